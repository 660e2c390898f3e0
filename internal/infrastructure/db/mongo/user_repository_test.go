package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/adriit/roledash/internal/core/domain"
)

func userDoc(id, email, username string, role domain.Role) bson.D {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "email", Value: email},
		{Key: "username", Value: username},
		{Key: "password_hash", Value: "$2a$12$hash"},
		{Key: "role", Value: string(role)},
		{Key: "created_at", Value: ts},
		{Key: "updated_at", Value: ts},
	}
}

func TestUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find by email", func(mt *mtest.T) {
		repo := &UserRepository{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "roledash.users", mtest.FirstBatch,
			userDoc("u1", "x.adriit@gmail.com", "bob_1", domain.RoleClient)))

		u, err := repo.FindByEmail(context.Background(), "x.adriit@gmail.com")
		if err != nil {
			t.Fatalf("FindByEmail returned error: %v", err)
		}
		if u.ID != "u1" || u.Username != "bob_1" || u.Role != domain.RoleClient {
			t.Fatalf("unexpected user: %+v", u)
		}
		if u.PasswordHash == "" {
			t.Fatalf("repository must return the stored hash")
		}
	})

	mt.Run("find missing", func(mt *mtest.T) {
		repo := &UserRepository{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "roledash.users", mtest.FirstBatch))

		if _, err := repo.FindByUsername(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	mt.Run("create", func(mt *mtest.T) {
		repo := &UserRepository{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		in := &domain.User{ID: "u1", Email: "x.adriit@gmail.com", Username: "bob_1", Role: domain.RoleClient}
		out, err := repo.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if out == in || out.ID != "u1" {
			t.Fatalf("expected a copy of the created user, got %+v", out)
		}
	})

	mt.Run("create duplicate username", func(mt *mtest.T) {
		repo := &UserRepository{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: roledash.users index: users_username_key dup key: { username: \"bob_1\" }",
		}))

		_, err := repo.Create(context.Background(), &domain.User{ID: "u2", Email: "y.adriit@gmail.com", Username: "bob_1"})
		if !errors.Is(err, domain.ErrUsernameTaken) {
			t.Fatalf("expected ErrUsernameTaken, got %v", err)
		}
	})

	mt.Run("create duplicate email", func(mt *mtest.T) {
		repo := &UserRepository{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: roledash.users index: users_email_key dup key",
		}))

		_, err := repo.Create(context.Background(), &domain.User{ID: "u2", Email: "x.adriit@gmail.com", Username: "bob_2"})
		if !errors.Is(err, domain.ErrEmailTaken) {
			t.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})

	mt.Run("count by role", func(mt *mtest.T) {
		repo := &UserRepository{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "roledash.users", mtest.FirstBatch,
			bson.D{{Key: "n", Value: int32(3)}}))

		n, err := repo.CountByRole(context.Background(), domain.RoleManager)
		if err != nil || n != 3 {
			t.Fatalf("CountByRole = %d, %v", n, err)
		}
	})

	mt.Run("delete by email", func(mt *mtest.T) {
		repo := &UserRepository{col: mt.Coll}
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: userDoc("u1", "x.adriit@gmail.com", "bob_1", domain.RoleClient)},
		})

		u, err := repo.DeleteByEmail(context.Background(), "x.adriit@gmail.com")
		if err != nil {
			t.Fatalf("DeleteByEmail returned error: %v", err)
		}
		if u.ID != "u1" {
			t.Fatalf("unexpected deleted user: %+v", u)
		}
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		repo := &UserRepository{col: mt.Coll}
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: nil}})

		if _, err := repo.DeleteByEmail(context.Background(), "ghost.adriit@gmail.com"); !errors.Is(err, domain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	mt.Run("update profile", func(mt *mtest.T) {
		repo := &UserRepository{col: mt.Coll}
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: userDoc("u1", "new.adriit@gmail.com", "bobby", domain.RoleClient)},
		})

		u, err := repo.UpdateProfile(context.Background(), "u1", "new.adriit@gmail.com", "bobby")
		if err != nil {
			t.Fatalf("UpdateProfile returned error: %v", err)
		}
		if u.Email != "new.adriit@gmail.com" || u.Username != "bobby" {
			t.Fatalf("unexpected updated user: %+v", u)
		}
	})
}
