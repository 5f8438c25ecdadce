// 版权所有 2024 AgentFlow Authors. 版权所有。
// 此源代码的使用由 MIT 许可规范,该许可可以是
// 在LICENSE文件中找到。

/*
包 federation 提供联邦治理模式：自治成员在共享策略下共同决策。

# 核心模型

  - Policy：策略名称、类型（voting/delegation/autonomy/resource_sharing）与有序参数；
    Threshold 读取 threshold 参数，缺省 0.5。
  - Federation：有序成员集合与按名称索引的策略。

# 决策

Decide 只接受投票策略，把成员选票交给 swarm.Consensus 统计，非成员选票被忽略。
*/
package federation
