package service

import (
	"context"
	"testing"

	"Tube/pkg/response"
)

func newRelationFixture() (*RelationService, *memFollows, *memBlocks) {
	follows := newMemFollows()
	blocks := newMemBlocks()
	svc := &RelationService{
		Follows: follows,
		Blocks:  blocks,
		Vis:     NewVisibilityService(blocks),
	}
	return svc, follows, blocks
}

func TestFollow_SelfReference(t *testing.T) {
	svc, _, _ := newRelationFixture()
	ctx := context.Background()

	if err := svc.Follow(ctx, "alice", "alice"); !isKind(err, response.KindValidation) {
		t.Fatalf("self follow: expected validation error, got %v", err)
	}
	if err := svc.Block(ctx, "alice", "alice"); !isKind(err, response.KindValidation) {
		t.Fatalf("self block: expected validation error, got %v", err)
	}
}

func TestFollow_Idempotent(t *testing.T) {
	svc, follows, _ := newRelationFixture()
	ctx := context.Background()

	if err := svc.Follow(ctx, "alice", "bob"); err != nil {
		t.Fatal(err)
	}
	// 重复关注直接成功
	if err := svc.Follow(ctx, "alice", "bob"); err != nil {
		t.Fatal(err)
	}
	ids, _ := follows.FollowingIDs(ctx, "alice")
	if len(ids) != 1 || ids[0] != "bob" {
		t.Fatalf("following=%v", ids)
	}

	if err := svc.Unfollow(ctx, "alice", "bob"); err != nil {
		t.Fatal(err)
	}
	// 对不存在的边解除关注也是成功
	if err := svc.Unfollow(ctx, "alice", "bob"); err != nil {
		t.Fatal(err)
	}
}

func TestBlock_KeepsFollowEdge(t *testing.T) {
	svc, follows, _ := newRelationFixture()
	ctx := context.Background()

	_ = svc.Follow(ctx, "alice", "bob")
	if err := svc.Block(ctx, "alice", "bob"); err != nil {
		t.Fatal(err)
	}

	// 拉黑不动关注边,解除拉黑后关注关系原样生效
	ids, _ := follows.FollowingIDs(ctx, "alice")
	if len(ids) != 1 || ids[0] != "bob" {
		t.Fatalf("follow edge should survive block: %v", ids)
	}

	if err := svc.Unblock(ctx, "alice", "bob"); err != nil {
		t.Fatal(err)
	}
	ids, _ = follows.FollowingIDs(ctx, "alice")
	if len(ids) != 1 {
		t.Fatalf("follow edge should be intact after unblock: %v", ids)
	}
}

func TestBlock_InvalidatesVisibility(t *testing.T) {
	svc, _, _ := newRelationFixture()
	ctx := context.Background()

	// 先填充缓存
	if _, err := svc.Vis.BlockedSet(ctx, "alice"); err != nil {
		t.Fatal(err)
	}
	if err := svc.Block(ctx, "alice", "bob"); err != nil {
		t.Fatal(err)
	}
	ids, _ := svc.Vis.BlockedSet(ctx, "alice")
	if len(ids) != 1 || ids[0] != "bob" {
		t.Fatalf("block should invalidate the cached set: %v", ids)
	}

	if err := svc.Unblock(ctx, "alice", "bob"); err != nil {
		t.Fatal(err)
	}
	ids, _ = svc.Vis.BlockedSet(ctx, "alice")
	if len(ids) != 0 {
		t.Fatalf("unblock should invalidate the cached set: %v", ids)
	}
}

func TestRelationConfig(t *testing.T) {
	svc, _, _ := newRelationFixture()
	ctx := context.Background()

	_ = svc.Follow(ctx, "alice", "bob")
	_ = svc.Follow(ctx, "carol", "alice")
	_ = svc.Block(ctx, "alice", "dave")

	resp, err := svc.Config(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Following) != 1 || resp.Following[0] != "bob" {
		t.Fatalf("following=%v", resp.Following)
	}
	if len(resp.Followers) != 1 || resp.Followers[0] != "carol" {
		t.Fatalf("followers=%v", resp.Followers)
	}
	if len(resp.Blocked) != 1 || resp.Blocked[0] != "dave" {
		t.Fatalf("blocked=%v", resp.Blocked)
	}
}
