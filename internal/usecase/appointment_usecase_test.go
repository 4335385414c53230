package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"gestao_producao/internal/domain/entities"
	"gestao_producao/internal/domain/production"
	"gestao_producao/internal/infrastructure/logger"
	"gestao_producao/internal/usecase/interfaces"
	mock_interfaces "gestao_producao/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type appointmentDeps struct {
	orders       *mock_interfaces.MockIOrderRepository
	appointments *mock_interfaces.MockIAppointmentRepository
	locker       *mock_interfaces.MockIOrderLocker
	unlocked     *bool
}

func newAppointmentUseCase(t *testing.T) (*AppointmentUseCase, appointmentDeps) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	deps := appointmentDeps{
		orders:       mock_interfaces.NewMockIOrderRepository(ctrl),
		appointments: mock_interfaces.NewMockIAppointmentRepository(ctrl),
		locker:       mock_interfaces.NewMockIOrderLocker(ctrl),
		unlocked:     new(bool),
	}
	uc := NewAppointmentUseCase(deps.orders, deps.appointments, deps.locker)
	uc.now = func() time.Time { return fixedNow }
	return uc, deps
}

func (d appointmentDeps) expectLock(orderID string) {
	unlocked := d.unlocked
	d.locker.EXPECT().Lock(gomock.Any(), orderID).Return(interfaces.UnlockFunc(func(context.Context) error {
		*unlocked = true
		return nil
	}), nil)
}

func TestAppointmentUseCase_Validation(t *testing.T) {
	t.Run("invalid order id", func(t *testing.T) {
		uc, _ := newAppointmentUseCase(t)
		_, err := uc.FinishStage(context.Background(), AppointmentInput{OrderID: "  "})
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("lock not obtained", func(t *testing.T) {
		uc, deps := newAppointmentUseCase(t)
		deps.locker.EXPECT().Lock(gomock.Any(), "o-1").Return(nil, interfaces.ErrLockNotObtained)

		_, err := uc.StartStage(context.Background(), AppointmentInput{OrderID: "o-1"})
		if !errors.Is(err, ErrOrderLocked) {
			t.Fatalf("expected ErrOrderLocked, got %v", err)
		}
	})

	t.Run("lock error", func(t *testing.T) {
		uc, deps := newAppointmentUseCase(t)
		deps.locker.EXPECT().Lock(gomock.Any(), "o-1").Return(nil, errors.New("redis down"))

		_, err := uc.StartStage(context.Background(), AppointmentInput{OrderID: "o-1"})
		if err == nil || err.Error() != "redis down" {
			t.Fatalf("expected redis error, got %v", err)
		}
	})

	t.Run("order not found releases lock", func(t *testing.T) {
		uc, deps := newAppointmentUseCase(t)
		deps.expectLock("o-1")
		deps.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{}, nil)

		_, err := uc.FinishStage(context.Background(), AppointmentInput{OrderID: "o-1"})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
		if !*deps.unlocked {
			t.Fatalf("expected lock to be released")
		}
	})

	t.Run("closed order", func(t *testing.T) {
		uc, deps := newAppointmentUseCase(t)
		deps.expectLock("o-1")
		o := sampleOrder()
		o.Status = entities.OrderStatusCompleted
		deps.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(o, nil)

		_, err := uc.FinishStage(context.Background(), AppointmentInput{OrderID: "o-1"})
		if !errors.Is(err, ErrOrderClosed) {
			t.Fatalf("expected ErrOrderClosed, got %v", err)
		}
	})

	indexCases := []struct {
		name       string
		itemIndex  int
		stageIndex int
	}{
		{name: "negative item", itemIndex: -1},
		{name: "item out of range", itemIndex: 1},
		{name: "negative stage", stageIndex: -1},
		{name: "stage out of range", stageIndex: 2},
	}
	for _, tc := range indexCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, deps := newAppointmentUseCase(t)
			deps.expectLock("o-1")
			deps.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(sampleOrder(), nil)

			_, err := uc.FinishStage(context.Background(), AppointmentInput{OrderID: "o-1", ItemIndex: tc.itemIndex, StageIndex: tc.stageIndex})
			if !errors.Is(err, production.ErrInvalidIndex) {
				t.Fatalf("expected ErrInvalidIndex, got %v", err)
			}
		})
	}
}

func TestAppointmentUseCase_FinishStage(t *testing.T) {
	t.Run("finish late stage shifts the rest of the item", func(t *testing.T) {
		uc, deps := newAppointmentUseCase(t)
		deps.expectLock("o-1")
		original := sampleOrder()
		deps.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(original, nil)

		finishedAt := time.Date(2024, 3, 4, 17, 0, 0, 0, time.UTC)
		deps.orders.EXPECT().SaveWithAppointment(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order, a entities.Appointment) (entities.Order, error) {
				if o.Version != 3 {
					t.Fatalf("expected read version to be passed, got %d", o.Version)
				}
				if o.Status != entities.OrderStatusInProgress {
					t.Fatalf("expected order in progress, got %s", o.Status)
				}
				s0, s1 := o.Items[0].Stages[0], o.Items[0].Stages[1]
				if s0.Status != entities.StageStatusCompleted || s0.ActualEnd == nil || !s0.ActualEnd.Equal(finishedAt) {
					t.Fatalf("unexpected finished stage: %+v", s0)
				}
				if !s0.PlannedEnd.Equal(date(2024, 3, 2)) {
					t.Fatalf("finished stage plan must not change, got %v", s0.PlannedEnd)
				}
				if !s1.PlannedStart.Equal(date(2024, 3, 5)) || !s1.PlannedEnd.Equal(date(2024, 3, 7)) {
					t.Fatalf("expected next stage shifted to 03-05..03-07, got %v..%v", s1.PlannedStart, s1.PlannedEnd)
				}
				if a.ID == "" || a.OrderID != "o-1" || a.StageName != "Corte" || a.Action != entities.AppointmentActionFinish || a.Operator != "joao" {
					t.Fatalf("unexpected appointment: %+v", a)
				}
				if !a.OccurredAt.Equal(finishedAt) || !a.CreatedAt.Equal(fixedNow) {
					t.Fatalf("unexpected appointment times: %+v", a)
				}
				o.Version++
				return o, nil
			},
		)

		res, err := uc.FinishStage(context.Background(), AppointmentInput{OrderID: " o-1 ", Operator: " joao ", At: finishedAt})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Progress != 50 || res.Order.Version != 4 {
			t.Fatalf("unexpected result: %+v", res)
		}
		if !*deps.unlocked {
			t.Fatalf("expected lock to be released")
		}
		if original.Items[0].Stages[0].ActualEnd != nil || !original.Items[0].Stages[1].PlannedStart.Equal(date(2024, 3, 3)) {
			t.Fatalf("loaded order must not be mutated")
		}
	})

	t.Run("at defaults to now", func(t *testing.T) {
		uc, deps := newAppointmentUseCase(t)
		deps.expectLock("o-1")
		deps.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(sampleOrder(), nil)
		deps.orders.EXPECT().SaveWithAppointment(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order, a entities.Appointment) (entities.Order, error) {
				if !a.OccurredAt.Equal(fixedNow) {
					t.Fatalf("expected now, got %v", a.OccurredAt)
				}
				if !o.Items[0].Stages[1].PlannedStart.Equal(date(2024, 3, 11)) {
					t.Fatalf("expected next stage from 03-11, got %v", o.Items[0].Stages[1].PlannedStart)
				}
				return o, nil
			},
		)

		if _, err := uc.FinishStage(context.Background(), AppointmentInput{OrderID: "o-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("already finished", func(t *testing.T) {
		uc, deps := newAppointmentUseCase(t)
		deps.expectLock("o-1")
		o := sampleOrder()
		end := date(2024, 3, 2)
		o.Items[0].Stages[0].ActualEnd = &end
		deps.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(o, nil)

		_, err := uc.FinishStage(context.Background(), AppointmentInput{OrderID: "o-1"})
		if !errors.Is(err, ErrStageAlreadyFinished) {
			t.Fatalf("expected ErrStageAlreadyFinished, got %v", err)
		}
	})

	t.Run("version conflict", func(t *testing.T) {
		uc, deps := newAppointmentUseCase(t)
		deps.expectLock("o-1")
		deps.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(sampleOrder(), nil)
		deps.orders.EXPECT().SaveWithAppointment(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Order{}, interfaces.ErrVersionConflict)

		_, err := uc.FinishStage(context.Background(), AppointmentInput{OrderID: "o-1"})
		if !errors.Is(err, ErrOrderConflict) {
			t.Fatalf("expected ErrOrderConflict, got %v", err)
		}
		if !*deps.unlocked {
			t.Fatalf("expected lock to be released")
		}
	})

	t.Run("save error", func(t *testing.T) {
		uc, deps := newAppointmentUseCase(t)
		var buf bytes.Buffer
		uc.log = logger.New("info")
		uc.log.SetOutput(&buf)
		deps.expectLock("o-1")
		deps.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(sampleOrder(), nil)
		deps.orders.EXPECT().SaveWithAppointment(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("db"))

		_, err := uc.FinishStage(context.Background(), AppointmentInput{OrderID: "o-1"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}

		var found bool
		for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
			var entry map[string]any
			if json.Unmarshal(line, &entry) != nil || entry["level"] != "error" {
				continue
			}
			found = true
			if entry["msg"] != "db" || entry["module"] != "appointment" || entry["funcName"] != "FinishStage" {
				t.Fatalf("unexpected error entry: %v", entry)
			}
			data, _ := entry["data"].(map[string]any)
			if data["order_id"] != "o-1" {
				t.Fatalf("expected order_id in error data, got %v", entry["data"])
			}
		}
		if !found {
			t.Fatalf("expected an error entry, got %s", buf.String())
		}
	})

	t.Run("evening report keeps the local calendar day", func(t *testing.T) {
		uc, deps := newAppointmentUseCase(t)
		deps.expectLock("o-1")
		o := sampleOrder()
		o.Items[0].Stages[0].DurationDays = 1
		deps.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(o, nil)

		brt := time.FixedZone("BRT", -3*60*60)
		finishedAt := time.Date(2024, 3, 10, 22, 0, 0, 0, brt)
		deps.orders.EXPECT().SaveWithAppointment(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order, a entities.Appointment) (entities.Order, error) {
				s0, s1 := o.Items[0].Stages[0], o.Items[0].Stages[1]
				if s0.ActualEnd == nil || s0.ActualEnd.Location() != time.UTC || !s0.ActualEnd.Equal(finishedAt) {
					t.Fatalf("expected actual end stored as the same instant in UTC, got %v", s0.ActualEnd)
				}
				if a.OccurredAt.Location() != time.UTC || !a.OccurredAt.Equal(finishedAt) {
					t.Fatalf("unexpected occurred_at: %v", a.OccurredAt)
				}
				if !s1.PlannedStart.Equal(date(2024, 3, 11)) || !s1.PlannedEnd.Equal(date(2024, 3, 13)) {
					t.Fatalf("expected next stage on 03-11..03-13, got %v..%v", s1.PlannedStart, s1.PlannedEnd)
				}
				return o, nil
			},
		)

		if _, err := uc.FinishStage(context.Background(), AppointmentInput{OrderID: "o-1", At: finishedAt}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAppointmentUseCase_StartStage(t *testing.T) {
	t.Run("start keeps the plan", func(t *testing.T) {
		uc, deps := newAppointmentUseCase(t)
		deps.expectLock("o-1")
		deps.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(sampleOrder(), nil)

		startedAt := time.Date(2024, 3, 3, 8, 0, 0, 0, time.UTC)
		deps.orders.EXPECT().SaveWithAppointment(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order, a entities.Appointment) (entities.Order, error) {
				s1 := o.Items[0].Stages[1]
				if s1.Status != entities.StageStatusInProgress || s1.ActualStart == nil || !s1.ActualStart.Equal(startedAt) {
					t.Fatalf("unexpected started stage: %+v", s1)
				}
				if !s1.PlannedStart.Equal(date(2024, 3, 3)) || !s1.PlannedEnd.Equal(date(2024, 3, 5)) {
					t.Fatalf("start must not move the plan: %v..%v", s1.PlannedStart, s1.PlannedEnd)
				}
				if o.Status != entities.OrderStatusInProgress {
					t.Fatalf("expected order in progress, got %s", o.Status)
				}
				if a.Action != entities.AppointmentActionStart || a.StageIndex != 1 || a.StageName != "Solda" {
					t.Fatalf("unexpected appointment: %+v", a)
				}
				return o, nil
			},
		)

		res, err := uc.StartStage(context.Background(), AppointmentInput{OrderID: "o-1", StageIndex: 1, At: startedAt})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Progress != 0 {
			t.Fatalf("started stages earn no credit, got %d", res.Progress)
		}
	})

	t.Run("already started", func(t *testing.T) {
		uc, deps := newAppointmentUseCase(t)
		deps.expectLock("o-1")
		o := sampleOrder()
		start := date(2024, 3, 1)
		o.Items[0].Stages[0].ActualStart = &start
		deps.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(o, nil)

		_, err := uc.StartStage(context.Background(), AppointmentInput{OrderID: "o-1"})
		if !errors.Is(err, ErrStageAlreadyStarted) {
			t.Fatalf("expected ErrStageAlreadyStarted, got %v", err)
		}
	})
}

func TestAppointmentUseCase_ListByOrderID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newAppointmentUseCase(t)
		_, err := uc.ListByOrderID(context.Background(), "")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, deps := newAppointmentUseCase(t)
		want := []entities.Appointment{{ID: "a-1", OrderID: "o-1"}}
		deps.appointments.EXPECT().ListByOrderID(gomock.Any(), "o-1").Return(want, nil)

		got, err := uc.ListByOrderID(context.Background(), " o-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "a-1" {
			t.Fatalf("unexpected appointments: %+v", got)
		}
	})
}
