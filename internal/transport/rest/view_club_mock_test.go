package rest

import (
	"context"
	"github.com/heartmarshall/bookclub-backend/internal/club"
	"sync"
	"time"
)

var _ viewClub = &viewClubMock{}

type viewClubMock struct {
	DashboardFunc func(year int, now time.Time) club.Dashboard
	MeetingFunc   func(now time.Time) club.Meeting
	ReloadFunc    func(ctx context.Context) error

	calls struct {
		Dashboard []struct {
			Year int
			Now  time.Time
		}
		Meeting []struct {
			Now time.Time
		}
		Reload []struct {
			Ctx context.Context
		}
	}
	lockDashboard sync.RWMutex
	lockMeeting   sync.RWMutex
	lockReload    sync.RWMutex
}

func (mock *viewClubMock) Dashboard(year int, now time.Time) club.Dashboard {
	if mock.DashboardFunc == nil {
		panic("viewClubMock.DashboardFunc: method is nil but viewClub.Dashboard was just called")
	}
	callInfo := struct {
		Year int
		Now  time.Time
	}{Year: year, Now: now}
	mock.lockDashboard.Lock()
	mock.calls.Dashboard = append(mock.calls.Dashboard, callInfo)
	mock.lockDashboard.Unlock()
	return mock.DashboardFunc(year, now)
}

func (mock *viewClubMock) DashboardCalls() []struct {
	Year int
	Now  time.Time
} {
	mock.lockDashboard.RLock()
	calls := mock.calls.Dashboard
	mock.lockDashboard.RUnlock()
	return calls
}

func (mock *viewClubMock) Meeting(now time.Time) club.Meeting {
	if mock.MeetingFunc == nil {
		panic("viewClubMock.MeetingFunc: method is nil but viewClub.Meeting was just called")
	}
	callInfo := struct{ Now time.Time }{Now: now}
	mock.lockMeeting.Lock()
	mock.calls.Meeting = append(mock.calls.Meeting, callInfo)
	mock.lockMeeting.Unlock()
	return mock.MeetingFunc(now)
}

func (mock *viewClubMock) MeetingCalls() []struct{ Now time.Time } {
	mock.lockMeeting.RLock()
	calls := mock.calls.Meeting
	mock.lockMeeting.RUnlock()
	return calls
}

func (mock *viewClubMock) Reload(ctx context.Context) error {
	if mock.ReloadFunc == nil {
		panic("viewClubMock.ReloadFunc: method is nil but viewClub.Reload was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockReload.Lock()
	mock.calls.Reload = append(mock.calls.Reload, callInfo)
	mock.lockReload.Unlock()
	return mock.ReloadFunc(ctx)
}

func (mock *viewClubMock) ReloadCalls() []struct{ Ctx context.Context } {
	mock.lockReload.RLock()
	calls := mock.calls.Reload
	mock.lockReload.RUnlock()
	return calls
}
