// 版权所有 2024 AgentFlow Authors. 版权所有。
// 此源代码的使用由 MIT 许可规范,该许可可以是
// 在LICENSE文件中找到。

/*
包 market 提供基于市场机制的多智能体资源协调：出价、拍卖、结算与资源分配。

# 核心模型

  - Bid：出价者、金额与资源名组成的不可变出价。
  - Auction：单一资源的拍卖，记录拍卖类型（english/dutch/sealed_bid/vickrey）、
    按插入顺序保存的出价以及可选保留价。
  - Allocation：智能体到所持资源列表的映射。
  - Market：拍卖容器，负责结算、分配，并可挂接 Ledger 与 Observer。

# 赢家规则

赢家是金额严格最大的出价，金额相同时取最先插入者；设置保留价且最高金额
低于保留价时没有赢家。拍卖类型不改变赢家选择，只影响 ClearingPrice：
维克里拍卖按第二高价成交。

金额为 NaN 的出价以及资源名与拍卖不一致的出价在 AddBid 时被拒绝。

# 与其他包协同

persistence.GormLedger 实现 Ledger，internal/metrics.Collector 实现 Observer，
Market.Settle 会为每次结算创建 OpenTelemetry span。
*/
package market
