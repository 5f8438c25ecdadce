// Copyright (c) AgentFlow Authors.
// Licensed under the MIT License.

/*
Package types 提供 agentpatterns 各协作模式包共享的基础类型。

# 概述

types 是最底层的公共包，不依赖任何内部包，为 market、swarm、coalition、
hierarchy、team、holarchy、blackboard、federation 以及 persistence
提供统一的标识符与错误契约，避免循环依赖。

# 核心类型

  - AgentID           — 参与协作的智能体标识（UUID 字符串）
  - Error / ErrorCode — 结构化错误体系，按错误码匹配哨兵错误

# 主要能力

  - 标识生成：NewAgentID / ParseAgentID
  - 错误工具链：NewError / Errorf / WithCause / GetErrorCode，
    配合 errors.Is 使用 ErrInvalidBid、ErrNotFound 等哨兵值
*/
package types
