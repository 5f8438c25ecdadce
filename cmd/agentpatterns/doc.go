// Copyright (c) AgentFlow Authors.
// Licensed under the MIT License.

/*
Package main 提供 agentpatterns 命令行入口。

# 概述

cmd/agentpatterns 读取 YAML 场景文件，在配置的存储与观测设施之上运行
协调模式：结算拍卖、统计共识投票、保存黑板快照，最后输出摘要。

# 核心类型

  - Scenario / MarketSpec / BallotSpec / BlackboardSpec — 场景文件结构
  - Runner  — 持有配置、日志、账本、快照存储、指标收集器与 tracer，执行场景
  - Report  — 运行结果，Print 输出人类可读摘要

# 主要能力

  - 子命令：simulate、version、help
  - 存储：账本 memory/gorm（postgres、mysql、sqlite），黑板 memory/redis
  - 观测：zap 日志、Prometheus 指标、OpenTelemetry 追踪
  - --metrics-addr：运行结束后继续暴露 /metrics，收到 SIGINT/SIGTERM 退出
  - 构建注入：Version、BuildTime、GitCommit 通过 ldflags 设置
*/
package main
