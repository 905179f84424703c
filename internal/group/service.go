package group

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gochat/internal/common"
	"gochat/internal/dbmysql"
)

// UserDirectory is the slice of the user store the membership engine needs
// to validate target ids. The user repository satisfies it.
type UserDirectory interface {
	GetActiveUsers(ctx context.Context, userIDs []string) ([]*dbmysql.User, error)
}

// AccessChecker is the authorization gate consulted by the message layer
// before it touches group-scoped data.
type AccessChecker interface {
	IsMember(ctx context.Context, userID, groupID string) (bool, error)
	RequireAccess(ctx context.Context, userID, groupID string, requireAdmin bool) error
}

type GroupService interface {
	AccessChecker

	CreateGroup(ctx context.Context, creatorID, name, description string, memberIDs []string) (*dbmysql.Group, error)
	GetGroup(ctx context.Context, actingUserID, groupID string) (*dbmysql.Group, error)
	AddMembers(ctx context.Context, actingUserID, groupID string, userIDs []string) (*dbmysql.Group, error)
	RemoveMember(ctx context.Context, actingUserID, groupID, targetUserID string) (string, error)
	UpdateMemberRole(ctx context.Context, actingUserID, groupID, targetUserID, newRole string) (string, error)
}

type groupService struct {
	groupRepo GroupRepository
	users     UserDirectory
	lookup    MembershipLookup
}

func NewGroupService(groupRepo GroupRepository, users UserDirectory, lookup MembershipLookup) GroupService {
	return &groupService{groupRepo: groupRepo, users: users, lookup: lookup}
}

// resolveActiveUsers validates that every id maps to a live account and
// returns them keyed by id. Unknown or deleted ids are reported together.
func (s *groupService) resolveActiveUsers(ctx context.Context, userIDs []string) (map[string]*dbmysql.User, error) {
	users, err := s.users.GetActiveUsers(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*dbmysql.User, len(users))
	for _, u := range users {
		byID[u.UserID] = u
	}

	var missing []string
	for _, id := range userIDs {
		if _, ok := byID[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, common.InvalidArgument(fmt.Sprintf("unknown or deleted user ids: %s", strings.Join(missing, ", ")))
	}

	return byID, nil
}

func (s *groupService) CreateGroup(ctx context.Context, creatorID, name, description string, memberIDs []string) (*dbmysql.Group, error) {
	if strings.TrimSpace(name) == "" {
		return nil, common.InvalidArgument("group name is required")
	}

	// creator is forced into the member set as admin, duplicates absorbed
	ids := []string{creatorID}
	seen := map[string]bool{creatorID: true}
	for _, id := range memberIDs {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	if _, err := s.resolveActiveUsers(ctx, ids); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	group := &dbmysql.Group{
		GroupID:     uuid.New().String(),
		Name:        strings.TrimSpace(name),
		Description: description,
		CreatedBy:   creatorID,
	}

	members := make([]dbmysql.GroupMember, 0, len(ids))
	for _, id := range ids {
		role := dbmysql.RoleMember
		if id == creatorID {
			role = dbmysql.RoleAdmin
		}
		members = append(members, dbmysql.GroupMember{
			GroupID:  group.GroupID,
			UserID:   id,
			Role:     role,
			JoinedAt: now,
		})
	}

	if err := s.groupRepo.CreateGroup(ctx, group, members); err != nil {
		return nil, err
	}

	return s.groupRepo.GetGroupByID(ctx, group.GroupID)
}

func (s *groupService) GetGroup(ctx context.Context, actingUserID, groupID string) (*dbmysql.Group, error) {
	group, err := s.groupRepo.GetGroupByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NotFound("group not found")
		}
		return nil, err
	}

	if err := s.RequireAccess(ctx, actingUserID, groupID, false); err != nil {
		return nil, err
	}

	return group, nil
}

func (s *groupService) AddMembers(ctx context.Context, actingUserID, groupID string, userIDs []string) (*dbmysql.Group, error) {
	if len(userIDs) == 0 {
		return nil, common.InvalidArgument("at least one user id is required")
	}

	if _, err := s.groupRepo.GetGroupByID(ctx, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NotFound("group not found")
		}
		return nil, err
	}

	if err := s.RequireAccess(ctx, actingUserID, groupID, true); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(userIDs))
	seen := map[string]bool{}
	for _, id := range userIDs {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	if _, err := s.resolveActiveUsers(ctx, ids); err != nil {
		return nil, err
	}

	// all-or-nothing: a single already-member id aborts the whole batch
	existing, err := s.groupRepo.ListMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}
	memberSet := make(map[string]bool, len(existing))
	for _, m := range existing {
		memberSet[m.UserID] = true
	}

	var already []string
	for _, id := range ids {
		if memberSet[id] {
			already = append(already, id)
		}
	}
	if len(already) > 0 {
		return nil, common.Conflict(fmt.Sprintf("users already members: %s", strings.Join(already, ", ")))
	}

	now := time.Now().UTC()
	rows := make([]dbmysql.GroupMember, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, dbmysql.GroupMember{
			GroupID:  groupID,
			UserID:   id,
			Role:     dbmysql.RoleMember,
			JoinedAt: now,
		})
	}

	if err := s.groupRepo.AddMembers(ctx, rows); err != nil {
		return nil, err
	}

	for _, id := range ids {
		s.lookup.Invalidate(ctx, id, groupID)
	}

	return s.groupRepo.GetGroupByID(ctx, groupID)
}

func (s *groupService) RemoveMember(ctx context.Context, actingUserID, groupID, targetUserID string) (string, error) {
	group, err := s.groupRepo.GetGroupByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", common.NotFound("group not found")
		}
		return "", err
	}

	actingMember, err := s.groupRepo.GetMember(ctx, groupID, actingUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", common.PermissionDenied("you are not a member of this group")
		}
		return "", err
	}

	targetMember, err := s.groupRepo.GetMember(ctx, groupID, targetUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", common.NotFound("user is not a member of this group")
		}
		return "", err
	}

	// the creator can never be removed, not even by themself
	if targetUserID == group.CreatedBy {
		return "", common.PermissionDenied("the group creator cannot be removed")
	}

	// removing someone else requires admin; self-removal is always allowed
	if actingUserID != targetUserID && actingMember.Role != dbmysql.RoleAdmin {
		return "", common.PermissionDenied("admin role required to remove other members")
	}

	msg := "Member removed successfully"

	if targetMember.Role == dbmysql.RoleAdmin {
		adminCount, err := s.groupRepo.CountAdmins(ctx, groupID)
		if err != nil {
			return "", err
		}

		if adminCount <= 1 {
			successor, err := s.findSuccessor(ctx, groupID, targetUserID)
			if err != nil {
				return "", err
			}
			if successor == nil {
				return "", common.PermissionDenied("group must retain at least one admin")
			}

			if err := s.groupRepo.RemoveMemberWithPromotion(ctx, groupID, targetUserID, successor.UserID); err != nil {
				return "", err
			}
			s.lookup.Invalidate(ctx, targetUserID, groupID)
			return fmt.Sprintf("Member removed successfully; %s was promoted to admin", successor.UserID), nil
		}
	}

	if err := s.groupRepo.RemoveMember(ctx, groupID, targetUserID); err != nil {
		return "", err
	}
	s.lookup.Invalidate(ctx, targetUserID, groupID)

	return msg, nil
}

// findSuccessor picks the earliest-joined remaining plain member, the one
// auto-promotion elevates when the last admin departs.
func (s *groupService) findSuccessor(ctx context.Context, groupID, departingUserID string) (*dbmysql.GroupMember, error) {
	members, err := s.groupRepo.ListMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}

	for i := range members {
		m := &members[i]
		if m.UserID == departingUserID {
			continue
		}
		if m.Role == dbmysql.RoleMember {
			return m, nil
		}
	}
	return nil, nil
}

func (s *groupService) UpdateMemberRole(ctx context.Context, actingUserID, groupID, targetUserID, newRole string) (string, error) {
	if newRole != dbmysql.RoleAdmin && newRole != dbmysql.RoleMember {
		return "", common.InvalidArgument("role must be admin or member")
	}

	if _, err := s.groupRepo.GetGroupByID(ctx, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", common.NotFound("group not found")
		}
		return "", err
	}

	if err := s.RequireAccess(ctx, actingUserID, groupID, true); err != nil {
		return "", err
	}

	targetMember, err := s.groupRepo.GetMember(ctx, groupID, targetUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", common.NotFound("user is not a member of this group")
		}
		return "", err
	}

	// same role is a no-op success, not an error
	if targetMember.Role == newRole {
		return "User already has this role", nil
	}

	// demoting the sole admin is refused outright, no auto-succession here
	if targetMember.Role == dbmysql.RoleAdmin && newRole == dbmysql.RoleMember {
		adminCount, err := s.groupRepo.CountAdmins(ctx, groupID)
		if err != nil {
			return "", err
		}
		if adminCount <= 1 {
			return "", common.PermissionDenied("cannot demote the last admin")
		}
	}

	if err := s.groupRepo.UpdateMemberRole(ctx, groupID, targetUserID, newRole); err != nil {
		return "", err
	}

	// role-only change, the cached boolean membership fact is still valid

	return "Member role updated successfully", nil
}

func (s *groupService) IsMember(ctx context.Context, userID, groupID string) (bool, error) {
	return s.lookup.IsMember(ctx, userID, groupID)
}

// RequireAccess is the authorization gate. Plain membership checks may be
// served from the cache; admin checks always re-read the authoritative store
// because the role is never cached.
func (s *groupService) RequireAccess(ctx context.Context, userID, groupID string, requireAdmin bool) error {
	if requireAdmin {
		member, err := s.groupRepo.GetMember(ctx, groupID, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return common.PermissionDenied("you are not a member of this group")
			}
			return err
		}
		if member.Role != dbmysql.RoleAdmin {
			return common.PermissionDenied("admin role required")
		}
		return nil
	}

	isMember, err := s.lookup.IsMember(ctx, userID, groupID)
	if err != nil {
		return err
	}
	if !isMember {
		return common.PermissionDenied("you are not a member of this group")
	}
	return nil
}
