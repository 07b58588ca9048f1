// Package policy реализует правила доступа к заметкам.
//
// Все функции чистые: они не обращаются к хранилищу и не пишут логи,
// а только выносят решение по уже разрешенным данным. Администраторы
// просматривают и восстанавливают чужие заметки, но не создают и не
// редактируют их; обычные пользователи работают только со своими.
package policy

import (
	"notevault/internal/domain/entities"
)

// Actor представляет аутентифицированного субъекта запроса.
type Actor struct {
	ID      string
	IsAdmin bool
}

// ActorFromUser создает Actor из доменного пользователя.
func ActorFromUser(user *entities.User) Actor {
	return Actor{ID: user.ID, IsAdmin: user.IsAdmin}
}

// CanCreate решает, может ли субъект создать заметку.
// Администраторы не являются авторами и получают отказ.
func CanCreate(actor Actor) error {
	if actor.IsAdmin {
		return entities.ErrAccessDenied
	}
	return nil
}

// ListScope вычисляет область видимости для списка заметок.
// Возвращаемая пустая строка означает заметки всех владельцев.
//
// Администратор видит все заметки либо ровно запрошенного владельца.
// Обычный пользователь видит только свои; явный запрос чужой области -
// это нарушение доступа, а не молчаливая подмена.
func ListScope(actor Actor, requestedOwner string) (string, error) {
	if actor.IsAdmin {
		return requestedOwner, nil
	}
	if requestedOwner != "" && requestedOwner != actor.ID {
		return "", entities.ErrAccessDenied
	}
	return actor.ID, nil
}

// CanRead решает, может ли субъект прочитать заметку с данным владельцем.
func CanRead(actor Actor, ownerID string) error {
	if actor.IsAdmin || actor.ID == ownerID {
		return nil
	}
	return entities.ErrAccessDenied
}

// CanModify решает, может ли субъект изменить или удалить заметку.
// Администраторам отказано безусловно, поэтому для update/delete эту
// проверку вызывают с пустым ownerID еще до поиска заметки.
func CanModify(actor Actor, ownerID string) error {
	if actor.IsAdmin {
		return entities.ErrAccessDenied
	}
	if ownerID != "" && actor.ID != ownerID {
		return entities.ErrAccessDenied
	}
	return nil
}

// CanRestore решает, может ли субъект восстановить удаленную заметку.
// Восстановление - административное действие, владение роли не играет.
func CanRestore(actor Actor) error {
	if !actor.IsAdmin {
		return entities.ErrAccessDenied
	}
	return nil
}
