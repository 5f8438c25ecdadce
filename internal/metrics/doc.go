// 版权所有 2024 AgentFlow Authors. 版权所有。
// 此源代码的使用由 MIT 许可规范,该许可可以是
// 在LICENSE文件中找到。

/*
包 metrics 提供基于 Prometheus 的协调模式指标采集能力，覆盖
拍卖、共识、黑板、存储与数据库五大维度。

# 概述

Collector 使用 promauto.With 将指标注册到调用方传入的 Registerer，
测试与 CLI 各自持有独立的 Registry。所有指标按 namespace 隔离。

# 主要能力

  - 拍卖指标：实现 market.Observer，记录结算次数（won/no_winner）、出价数、
    成交价分布与资源分配次数。
  - 共识指标：共识轮次（reached/not_reached）与每轮票数分布。
  - 黑板指标：知识条数 Gauge、快照存取次数。
  - 存储指标：命中与未命中计数，按 store 分组。
  - 数据库指标：活跃/空闲连接数 Gauge、查询耗时 Histogram。
*/
package metrics
