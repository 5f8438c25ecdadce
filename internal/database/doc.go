// 版权所有 2024 AgentFlow Authors. 版权所有。
// 此源代码的使用由 MIT 许可规范,该许可可以是
// 在LICENSE文件中找到。

/*
包 database 提供基于 GORM 的数据库连接与连接池管理，支持健康检查、
统计信息采集与事务重试，为结算账本提供存储。

# 核心类型

  - Open / Dialector：按 config.DatabaseConfig 的驱动类型选择
    postgres、mysql 或 sqlite（纯 Go 实现）方言并建立连接。
  - PoolManager：连接池管理器，持有 GORM DB 实例与底层 sql.DB，
    提供 DB()、Ping()、Stats()、Close() 等生命周期方法。
  - PoolConfig：连接池配置，包含最大空闲连接数、最大打开连接数、
    连接最大生命周期、空闲超时与健康检查间隔。

# 主要能力

  - 健康检查：后台定时 PingContext 探活，可通过 WithStatsRecorder
    把连接数上报给指标收集器；Close 后探活协程退出。
  - 事务管理：WithTransaction 提供单次事务执行，
    WithTransactionRetry 支持指数退避重试（死锁、序列化失败、SQLite 写锁等场景）。
*/
package database
