package booking

import (
	"testing"
	"time"

	"medibook/utils"
)

func testPolicy() SlotPolicy {
	p := DefaultSlotPolicy()
	p.Location = time.UTC
	return p
}

func at(hour, min int) time.Time {
	return time.Date(2025, time.June, 5, hour, min, 0, 0, time.UTC)
}

func TestGenerateSlots_AlwaysSevenBuckets(t *testing.T) {
	for _, now := range []time.Time{at(8, 0), at(14, 10), at(20, 45), at(21, 30), at(23, 59)} {
		days := GenerateSlots(now, nil, testPolicy())
		if len(days) != 7 {
			t.Fatalf("now %s: expected 7 buckets, got %d", now.Format("15:04"), len(days))
		}
		if days[0].Date != "5_6_2025" || days[6].Date != "11_6_2025" {
			t.Errorf("unexpected bucket dates %s..%s", days[0].Date, days[6].Date)
		}
	}
}

func TestGenerateSlots_BeforeOpening(t *testing.T) {
	days := GenerateSlots(at(8, 0), nil, testPolicy())
	first := days[0].Slots
	if len(first) != 22 {
		t.Fatalf("expected 22 slots, got %d", len(first))
	}
	if first[0].SlotTime != "10:00 AM" || first[len(first)-1].SlotTime != "8:30 PM" {
		t.Errorf("unexpected range %s..%s", first[0].SlotTime, first[len(first)-1].SlotTime)
	}
}

func TestGenerateSlots_ExactlyAtOpening(t *testing.T) {
	days := GenerateSlots(at(10, 0), nil, testPolicy())
	if got := days[0].Slots[0].SlotTime; got != "10:00 AM" {
		t.Errorf("expected 10:00 AM, got %s", got)
	}
}

func TestGenerateSlots_MidDayAppliesBuffer(t *testing.T) {
	days := GenerateSlots(at(14, 10), nil, testPolicy())
	first := days[0].Slots
	if len(first) != 11 {
		t.Fatalf("expected 11 slots, got %d", len(first))
	}
	if first[0].SlotTime != "3:30 PM" || first[10].SlotTime != "8:30 PM" {
		t.Errorf("unexpected range %s..%s", first[0].SlotTime, first[10].SlotTime)
	}
	for _, s := range first {
		if s.DateTime.Sub(at(14, 10)) < 60*time.Minute {
			t.Errorf("slot %s is inside the lead time", s.SlotTime)
		}
	}
}

// The lead time is counted from the next grid boundary, not from the current
// half hour: 14:45 rounds to 15:00 and opens at 16:00.
func TestGenerateSlots_LeadTimeFromNextBoundary(t *testing.T) {
	cases := map[time.Time]string{
		at(14, 45): "4:00 PM",
		at(14, 30): "3:30 PM",
		at(10, 1):  "11:30 AM",
	}
	for now, want := range cases {
		days := GenerateSlots(now, nil, testPolicy())
		if got := days[0].Slots[0].SlotTime; got != want {
			t.Errorf("now %s: expected first slot %s, got %s", now.Format("15:04"), want, got)
		}
	}
}

func TestGenerateSlots_LateEveningIsEmpty(t *testing.T) {
	for _, now := range []time.Time{at(20, 45), at(21, 30)} {
		days := GenerateSlots(now, nil, testPolicy())
		if len(days[0].Slots) != 0 {
			t.Errorf("now %s: expected no slots today, got %d", now.Format("15:04"), len(days[0].Slots))
		}
		if len(days[1].Slots) != 22 {
			t.Errorf("now %s: expected full tomorrow, got %d", now.Format("15:04"), len(days[1].Slots))
		}
	}
}

func TestGenerateSlots_ZeroBufferLeavesAtMostOne(t *testing.T) {
	p := testPolicy()
	p.BufferMinutes = 0
	days := GenerateSlots(at(20, 15), nil, p)
	if len(days[0].Slots) != 1 || days[0].Slots[0].SlotTime != "8:30 PM" {
		t.Errorf("expected only 8:30 PM, got %+v", days[0].Slots)
	}
}

func TestGenerateSlots_ExcludesBooked(t *testing.T) {
	booked := map[string]struct{}{
		utils.SlotKey("6_6_2025", "10:00 AM"): {},
		utils.SlotKey("6_6_2025", "4:30 PM"):  {},
	}
	days := GenerateSlots(at(8, 0), booked, testPolicy())
	if len(days[1].Slots) != 20 {
		t.Fatalf("expected 20 slots on day 2, got %d", len(days[1].Slots))
	}
	for _, s := range days[1].Slots {
		if _, ok := booked[utils.SlotKey(s.SlotDate, s.SlotTime)]; ok {
			t.Errorf("booked slot %s returned", s.SlotTime)
		}
	}
	if len(days[0].Slots) != 22 {
		t.Errorf("exclusion leaked into another day")
	}
}

func TestGenerateSlots_HalfOpenWindow(t *testing.T) {
	days := GenerateSlots(at(8, 0), nil, testPolicy())
	for _, d := range days {
		for _, s := range d.Slots {
			h, m := s.DateTime.Hour(), s.DateTime.Minute()
			if h < 10 || h >= 21 || m%30 != 0 {
				t.Errorf("slot %s outside the grid", s.SlotTime)
			}
		}
	}
}

func TestGenerateSlots_MonthRollover(t *testing.T) {
	now := time.Date(2025, time.January, 29, 9, 0, 0, 0, time.UTC)
	days := GenerateSlots(now, nil, testPolicy())
	want := []string{"29_1_2025", "30_1_2025", "31_1_2025", "1_2_2025", "2_2_2025", "3_2_2025", "4_2_2025"}
	for i, d := range days {
		if d.Date != want[i] {
			t.Errorf("day %d: expected %s, got %s", i, want[i], d.Date)
		}
	}
}

func TestFlattenSlots_OrdersByDay(t *testing.T) {
	slots := map[string][]string{
		"10_6_2025": {"11:00 AM"},
		"5_6_2025":  {"2:00 PM", "10:00 AM"},
	}
	got := flattenSlots(slots, time.UTC)
	want := []string{"5_6_2025_2:00 PM", "5_6_2025_10:00 AM", "10_6_2025_11:00 AM"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}
