package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/bookclub-backend/internal/club"
	"github.com/heartmarshall/bookclub-backend/internal/domain"
	"github.com/heartmarshall/bookclub-backend/internal/service/actionlist"
	"sync"
)

var _ actionListClub = &actionListClubMock{}

type actionListClubMock struct {
	ActionOverviewFunc        func() club.ActionOverview
	AddActionListFunc         func(ctx context.Context, input actionlist.CreateInput) (*domain.ActionList, error)
	AddActionListFromBookFunc func(ctx context.Context, input actionlist.FromBookInput) (*domain.ActionList, error)
	DeleteActionListFunc      func(ctx context.Context, id uuid.UUID) error
	UpdateActionListFunc      func(ctx context.Context, input actionlist.UpdateInput) (*domain.ActionList, error)

	calls struct {
		ActionOverview []struct{}
		AddActionList  []struct {
			Ctx   context.Context
			Input actionlist.CreateInput
		}
		AddActionListFromBook []struct {
			Ctx   context.Context
			Input actionlist.FromBookInput
		}
		DeleteActionList []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		UpdateActionList []struct {
			Ctx   context.Context
			Input actionlist.UpdateInput
		}
	}
	lockActionOverview        sync.RWMutex
	lockAddActionList         sync.RWMutex
	lockAddActionListFromBook sync.RWMutex
	lockDeleteActionList      sync.RWMutex
	lockUpdateActionList      sync.RWMutex
}

func (mock *actionListClubMock) ActionOverview() club.ActionOverview {
	if mock.ActionOverviewFunc == nil {
		panic("actionListClubMock.ActionOverviewFunc: method is nil but actionListClub.ActionOverview was just called")
	}
	mock.lockActionOverview.Lock()
	mock.calls.ActionOverview = append(mock.calls.ActionOverview, struct{}{})
	mock.lockActionOverview.Unlock()
	return mock.ActionOverviewFunc()
}

func (mock *actionListClubMock) ActionOverviewCalls() []struct{} {
	mock.lockActionOverview.RLock()
	calls := mock.calls.ActionOverview
	mock.lockActionOverview.RUnlock()
	return calls
}

func (mock *actionListClubMock) AddActionList(ctx context.Context, input actionlist.CreateInput) (*domain.ActionList, error) {
	if mock.AddActionListFunc == nil {
		panic("actionListClubMock.AddActionListFunc: method is nil but actionListClub.AddActionList was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input actionlist.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockAddActionList.Lock()
	mock.calls.AddActionList = append(mock.calls.AddActionList, callInfo)
	mock.lockAddActionList.Unlock()
	return mock.AddActionListFunc(ctx, input)
}

func (mock *actionListClubMock) AddActionListCalls() []struct {
	Ctx   context.Context
	Input actionlist.CreateInput
} {
	mock.lockAddActionList.RLock()
	calls := mock.calls.AddActionList
	mock.lockAddActionList.RUnlock()
	return calls
}

func (mock *actionListClubMock) AddActionListFromBook(ctx context.Context, input actionlist.FromBookInput) (*domain.ActionList, error) {
	if mock.AddActionListFromBookFunc == nil {
		panic("actionListClubMock.AddActionListFromBookFunc: method is nil but actionListClub.AddActionListFromBook was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input actionlist.FromBookInput
	}{Ctx: ctx, Input: input}
	mock.lockAddActionListFromBook.Lock()
	mock.calls.AddActionListFromBook = append(mock.calls.AddActionListFromBook, callInfo)
	mock.lockAddActionListFromBook.Unlock()
	return mock.AddActionListFromBookFunc(ctx, input)
}

func (mock *actionListClubMock) AddActionListFromBookCalls() []struct {
	Ctx   context.Context
	Input actionlist.FromBookInput
} {
	mock.lockAddActionListFromBook.RLock()
	calls := mock.calls.AddActionListFromBook
	mock.lockAddActionListFromBook.RUnlock()
	return calls
}

func (mock *actionListClubMock) DeleteActionList(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteActionListFunc == nil {
		panic("actionListClubMock.DeleteActionListFunc: method is nil but actionListClub.DeleteActionList was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDeleteActionList.Lock()
	mock.calls.DeleteActionList = append(mock.calls.DeleteActionList, callInfo)
	mock.lockDeleteActionList.Unlock()
	return mock.DeleteActionListFunc(ctx, id)
}

func (mock *actionListClubMock) DeleteActionListCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDeleteActionList.RLock()
	calls := mock.calls.DeleteActionList
	mock.lockDeleteActionList.RUnlock()
	return calls
}

func (mock *actionListClubMock) UpdateActionList(ctx context.Context, input actionlist.UpdateInput) (*domain.ActionList, error) {
	if mock.UpdateActionListFunc == nil {
		panic("actionListClubMock.UpdateActionListFunc: method is nil but actionListClub.UpdateActionList was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input actionlist.UpdateInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateActionList.Lock()
	mock.calls.UpdateActionList = append(mock.calls.UpdateActionList, callInfo)
	mock.lockUpdateActionList.Unlock()
	return mock.UpdateActionListFunc(ctx, input)
}

func (mock *actionListClubMock) UpdateActionListCalls() []struct {
	Ctx   context.Context
	Input actionlist.UpdateInput
} {
	mock.lockUpdateActionList.RLock()
	calls := mock.calls.UpdateActionList
	mock.lockUpdateActionList.RUnlock()
	return calls
}
