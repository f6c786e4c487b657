package dialog

import (
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestStoreLifecycle(t *testing.T) {
	store := NewStore()
	productID := uuid.New()

	if _, ok := store.Get(1); ok {
		t.Fatal("empty store should hold no conversation")
	}

	store.Start(1, productID)

	conv, ok := store.Get(1)
	if !ok {
		t.Fatal("conversation should exist after Start")
	}
	if conv.Step != StepAwaitingDate || conv.ProductID != productID {
		t.Errorf("unexpected conversation after Start: %+v", conv)
	}

	if !store.AdvanceDate(1, "25.12.2025") {
		t.Fatal("AdvanceDate should succeed from awaiting date")
	}
	if !store.AdvanceTime(1, "18:30") {
		t.Fatal("AdvanceTime should succeed from awaiting time")
	}

	conv, _ = store.Get(1)
	if conv.Step != StepAwaitingPayment || conv.Date != "25.12.2025" || conv.Time != "18:30" {
		t.Errorf("unexpected conversation after advances: %+v", conv)
	}

	store.Clear(1)
	if _, ok := store.Get(1); ok {
		t.Error("conversation should be gone after Clear")
	}
}

func TestStoreAdvanceRequiresMatchingStep(t *testing.T) {
	store := NewStore()
	store.Start(1, uuid.New())

	if store.AdvanceTime(1, "18:30") {
		t.Error("AdvanceTime must fail while awaiting date")
	}
	if store.AdvanceDate(2, "25.12.2025") {
		t.Error("AdvanceDate must fail for a user with no conversation")
	}

	store.AdvanceDate(1, "25.12.2025")
	if store.AdvanceDate(1, "26.12.2025") {
		t.Error("AdvanceDate must fail once the date step is done")
	}
}

func TestStoreGetReturnsACopy(t *testing.T) {
	store := NewStore()
	store.Start(1, uuid.New())

	conv, _ := store.Get(1)
	conv.Date = "hacked"
	conv.Step = StepAwaitingPayment

	fresh, _ := store.Get(1)
	if fresh.Date != "" || fresh.Step != StepAwaitingDate {
		t.Error("mutating the returned conversation must not affect the store")
	}
}

func TestStoreUsersAreIndependent(t *testing.T) {
	store := NewStore()
	first := uuid.New()
	second := uuid.New()

	store.Start(1, first)
	store.Start(2, second)
	store.AdvanceDate(1, "25.12.2025")

	conv1, _ := store.Get(1)
	conv2, _ := store.Get(2)

	if conv1.Step != StepAwaitingTime {
		t.Errorf("user 1 step = %v", conv1.Step)
	}
	if conv2.Step != StepAwaitingDate || conv2.ProductID != second {
		t.Errorf("user 2 conversation affected by user 1: %+v", conv2)
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			store.Start(userID, uuid.New())
			store.AdvanceDate(userID, "25.12.2025")
			store.AdvanceTime(userID, "18:30")
			if conv, ok := store.Get(userID); !ok || conv.Step != StepAwaitingPayment {
				t.Errorf("user %d lost its conversation", userID)
			}
			store.Clear(userID)
		}(int64(i))
	}
	wg.Wait()
}
