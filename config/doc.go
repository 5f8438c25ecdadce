// Package config 提供 agentpatterns 的配置管理功能。
//
// 配置按 默认值 → YAML 文件 → 环境变量 的顺序合并，
// 环境变量以 AGENTPATTERNS_ 为前缀，例如 AGENTPATTERNS_SWARM_THRESHOLD=0.7。
package config
