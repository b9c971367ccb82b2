package entity

import "github.com/famquest-app/backend/pkg/enum"

type MemberRole string

var (
	RoleParent = enum.New(MemberRole("parent"))
	RoleChild  = enum.New(MemberRole("child"))
)

type Member struct {
	Base

	Name   string
	Avatar string
	Role   MemberRole `gorm:"default:child"`
	Points uint64
}
