// 版权所有 2024 AgentFlow Authors. 版权所有。
// 此源代码的使用由 MIT 许可规范,该许可可以是
// 在LICENSE文件中找到。

/*
包 cache 封装 go-redis 客户端，为黑板快照存储提供连接管理与原子写入。

# 核心类型

  - Manager：持有 Redis 客户端，按 config.RedisConfig 建立连接，
    提供 Get/GetJSON/HGetAll/Exists/Delete 读删操作，
    以及 Replace 在 MULTI/EXEC 事务中整体替换一组键。
  - Entry：Replace 的写入单元，值可以是字符串或哈希。

# 主要能力

  - 健康检查：WithHealthCheck 开启后台 Ping，Close 后协程退出。
  - 错误语义：ErrCacheMiss 表示键不存在，ErrClosed 表示管理器已关闭。
*/
package cache
