// 版权所有 2024 AgentFlow Authors. 版权所有。
// 此源代码的使用由 MIT 许可规范,该许可可以是
// 在LICENSE文件中找到。

/*
包 server 提供暴露 Prometheus 指标的 HTTP 服务器生命周期管理，
支持非阻塞启动、优雅关闭与系统信号监听。

# 核心类型

  - Manager：持有 http.Server、net.Listener 与异步错误通道，
    提供 Start/Shutdown/WaitForShutdown 等生命周期方法。
  - Config：监听地址、读写超时与优雅关闭超时。
  - NewMetricsHandler：基于任意 prometheus.Gatherer 的 /metrics
    与 /healthz 路由。

# 主要能力

  - 非阻塞启动：Start 在后台 goroutine 中运行服务，Addr 返回实际监听地址。
  - 优雅关闭：WaitForShutdown 在 SIGINT/SIGTERM、ctx 取消或服务异常时关闭服务器。
*/
package server
