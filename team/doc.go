// 版权所有 2024 AgentFlow Authors. 版权所有。
// 此源代码的使用由 MIT 许可规范,该许可可以是
// 在LICENSE文件中找到。

/*
包 team 提供基于角色分工的团队模式。

Team 为每个成员保存一个 Role（leader/coordinator/executor/specialist 及职责列表），
并通过 Coordination 记录领导者和成员加入顺序。分配角色即登记成员；
只有成员才能被指定为领导者，否则返回 types.ErrNotMember。
*/
package team
