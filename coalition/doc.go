// 版权所有 2024 AgentFlow Authors. 版权所有。
// 此源代码的使用由 MIT 许可规范,该许可可以是
// 在LICENSE文件中找到。

/*
包 coalition 提供联盟组建模式：为共同目标临时聚合一组智能体。

# 核心模型

  - Coalition：联盟名称、成员集合、可选策略与联盟价值。
  - Formation：组建过程，只能从候选者中选中成员，Form 把选中者物化为联盟。
  - Strategy：优化目标（maximize_utility/minimize_cost/balance_resources/
    maximize_coverage）加有序参数。

联盟是单一所有者的普通值，不做并发保护。
*/
package coalition
