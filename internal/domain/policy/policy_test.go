package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notevault/internal/domain/entities"
	"notevault/internal/domain/policy"
)

var (
	user  = policy.Actor{ID: "user-1"}
	other = policy.Actor{ID: "user-2"}
	admin = policy.Actor{ID: "admin-1", IsAdmin: true}
)

func TestCanCreate(t *testing.T) {
	t.Run("Обычный пользователь может создавать заметки", func(t *testing.T) {
		assert.NoError(t, policy.CanCreate(user))
	})

	t.Run("Администратору отказано в создании", func(t *testing.T) {
		assert.ErrorIs(t, policy.CanCreate(admin), entities.ErrAccessDenied)
	})
}

func TestListScope(t *testing.T) {
	tests := []struct {
		name           string
		actor          policy.Actor
		requestedOwner string
		wantScope      string
		wantErr        error
	}{
		{
			name:           "Администратор без области видит всех",
			actor:          admin,
			requestedOwner: "",
			wantScope:      "",
		},
		{
			name:           "Администратор с областью видит ровно ее",
			actor:          admin,
			requestedOwner: "user-1",
			wantScope:      "user-1",
		},
		{
			name:           "Пользователь без области видит только себя",
			actor:          user,
			requestedOwner: "",
			wantScope:      "user-1",
		},
		{
			name:           "Пользователь с собственной областью видит себя",
			actor:          user,
			requestedOwner: "user-1",
			wantScope:      "user-1",
		},
		{
			name:           "Чужая область для пользователя - отказ, а не подмена",
			actor:          user,
			requestedOwner: "user-2",
			wantErr:        entities.ErrAccessDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope, err := policy.ListScope(tt.actor, tt.requestedOwner)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantScope, scope)
		})
	}
}

func TestCanRead(t *testing.T) {
	t.Run("Владелец читает свою заметку", func(t *testing.T) {
		assert.NoError(t, policy.CanRead(user, user.ID))
	})

	t.Run("Администратор читает любую заметку", func(t *testing.T) {
		assert.NoError(t, policy.CanRead(admin, user.ID))
	})

	t.Run("Не владелец получает отказ", func(t *testing.T) {
		assert.ErrorIs(t, policy.CanRead(other, user.ID), entities.ErrAccessDenied)
	})
}

func TestCanModify(t *testing.T) {
	t.Run("Владелец изменяет свою заметку", func(t *testing.T) {
		assert.NoError(t, policy.CanModify(user, user.ID))
	})

	t.Run("Не владелец получает отказ", func(t *testing.T) {
		assert.ErrorIs(t, policy.CanModify(other, user.ID), entities.ErrAccessDenied)
	})

	t.Run("Администратору отказано даже для собственного ID", func(t *testing.T) {
		assert.ErrorIs(t, policy.CanModify(admin, admin.ID), entities.ErrAccessDenied)
	})

	t.Run("Предварительная проверка без владельца отсекает администратора", func(t *testing.T) {
		assert.ErrorIs(t, policy.CanModify(admin, ""), entities.ErrAccessDenied)
		assert.NoError(t, policy.CanModify(user, ""))
	})
}

func TestCanRestore(t *testing.T) {
	t.Run("Администратор восстанавливает заметки", func(t *testing.T) {
		assert.NoError(t, policy.CanRestore(admin))
	})

	t.Run("Пользователю отказано независимо от владения", func(t *testing.T) {
		assert.ErrorIs(t, policy.CanRestore(user), entities.ErrAccessDenied)
	})
}
