package probe

import "testing"

func TestHistoryOrderAndIDs(t *testing.T) {
	history := NewHistory(DefaultHistoryCapacity)

	for i := 0; i < 3; i++ {
		id := history.Append(DecodedEvent{Timestamp: float64(i)})
		if id != uint64(i) {
			t.Fatalf("expected id %d, got %d", i, id)
		}
	}

	events := history.Events()
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	for i, e := range events {
		if e.Timestamp != float64(i) {
			t.Fatalf("out of order at %d: %v", i, e.Timestamp)
		}
	}
}

func TestHistoryCapacityDropsOldest(t *testing.T) {
	history := NewHistory(2)

	history.Append(DecodedEvent{Timestamp: 0})
	history.Append(DecodedEvent{Timestamp: 1})
	history.Append(DecodedEvent{Timestamp: 2})

	if history.Len() != 2 {
		t.Fatalf("expected 2 retained, got %d", history.Len())
	}
	events := history.Events()
	if events[0].Timestamp != 1 || events[1].Timestamp != 2 {
		t.Fatalf("expected oldest dropped, got %v %v", events[0].Timestamp, events[1].Timestamp)
	}
	ids := history.IDs()
	if ids[0] != 1 || ids[1] != 2 {
		t.Fatalf("unexpected ids %v", ids)
	}
}

func TestHistoryClearKeepsIDsMonotonic(t *testing.T) {
	history := NewHistory(0)

	history.Append(DecodedEvent{})
	history.Append(DecodedEvent{})
	history.Clear()

	if history.Len() != 0 {
		t.Fatalf("expected empty after clear")
	}
	if _, ok := history.Last(); ok {
		t.Fatalf("expected no last event after clear")
	}
	if id := history.Append(DecodedEvent{}); id != 2 {
		t.Fatalf("expected id 2 after clear, got %d", id)
	}
}

func TestHistoryUnboundedGrowth(t *testing.T) {
	history := NewHistory(0)
	for i := 0; i < 5000; i++ {
		history.Append(DecodedEvent{})
	}
	if history.Len() != 5000 {
		t.Fatalf("expected 5000 retained, got %d", history.Len())
	}
}

func TestHistoryLast(t *testing.T) {
	history := NewHistory(4)
	history.Append(DecodedEvent{Source: "a"})
	history.Append(DecodedEvent{Source: "b"})

	last, ok := history.Last()
	if !ok || last.Source != "b" {
		t.Fatalf("unexpected last event %+v %v", last, ok)
	}
}
