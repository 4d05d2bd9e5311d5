package metrics

import (
	"reflect"
	"testing"
	"time"
)

func TestTrackRecordsElapsed(t *testing.T) {
	timings := Timings{}

	stop := timings.Track("data_agent_ms")
	time.Sleep(2 * time.Millisecond)
	stop()

	got, ok := timings["data_agent_ms"]
	if !ok {
		t.Fatal("expected a recorded timing")
	}
	if got <= 0 {
		t.Errorf("elapsed time must be positive, got %v", got)
	}
}

func TestKeysSorted(t *testing.T) {
	timings := Timings{"planner_ms": 1, "data_agent_ms": 2, "insight_agent_ms": 3}

	want := []string{"data_agent_ms", "insight_agent_ms", "planner_ms"}
	if !reflect.DeepEqual(timings.Keys(), want) {
		t.Errorf("expected sorted keys %v, got %v", want, timings.Keys())
	}
}
