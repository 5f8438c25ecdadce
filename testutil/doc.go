// Copyright 2026 AgentFlow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

/*
Package testutil 提供 agentpatterns 测试的共享工具和辅助函数。

# 核心能力

  - 上下文辅助: TestContext / TestContextWithTimeout / CancelledContext，
    自动注册 Cleanup 防止泄漏
  - 异步断言: AssertEventuallyTrue / WaitFor
  - 数据工具: MustJSON

# 子包

  - testutil/mocks: MockLedger（可注入错误）、MockObserver、MockStoreMetrics
  - testutil/fixtures: 测试数据工厂，提供固定出价者、拍卖、结算与黑板样例

# 使用示例

	ctx := testutil.TestContext(t)
	ledger := mocks.NewMockLedger().WithError(errors.New("disk full"))
	a := fixtures.Auction(market.AuctionVickrey, "gpu", 5, 10, 7)
*/
package testutil
