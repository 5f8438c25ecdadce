// 版权所有 2024 AgentFlow Authors. 版权所有。
// 此源代码的使用由 MIT 许可规范,该许可可以是
// 在LICENSE文件中找到。

/*
包 blackboard 提供黑板架构模式：多个知识源围绕一块共享知识空间协作。

  - Blackboard：键值知识与知识源列表，读写都是同步的单一所有者操作。
  - KnowledgeSource：sensor/reasoning/planning/learning 类型与优先级。
  - Snapshot / Restore：导出和重建黑板，供 persistence 包存储到 Redis 或内存。
*/
package blackboard
