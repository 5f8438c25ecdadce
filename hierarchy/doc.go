// 版权所有 2024 AgentFlow Authors. 版权所有。
// 此源代码的使用由 MIT 许可规范,该许可可以是
// 在LICENSE文件中找到。

/*
包 hierarchy 提供层级化组织模式：战略、战术、执行等多级结构与自上而下的任务委派。

# 核心模型

  - Level：层级名称、类型与 Rank，Rank 越大层级越高。
  - Hierarchy：层级集合、智能体归属与委派记录。
  - Delegation：委派方、被委派方、任务与授权等级。

# 约束

  - 层级名称唯一，重复添加返回 types.ErrDuplicate。
  - 只能把智能体分配到已存在的层级，否则返回 types.ErrNotFound。
  - 委派要求双方均已分配层级且委派方严格高于被委派方，
    否则返回 types.ErrInvalidDelegation。
*/
package hierarchy
