package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/studyhub/pkg/clock"
	"tableflip.dev/studyhub/pkg/dates"
	"tableflip.dev/studyhub/pkg/entity"
)

var now = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.Local)

func engine() Engine {
	return New(dates.New(clock.NewFake(now)))
}

func day(offset int) entity.Date {
	return entity.DateOf(now).AddDays(offset)
}

func task(id string, due int, p entity.Priority, s entity.Status) entity.Task {
	return entity.Task{ID: id, Title: id, Category: entity.CategoryStudy, Priority: p, DueDate: day(due), Status: s}
}

func ids[T entity.Identified](items []T) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.EntityID())
	}
	return out
}

func sampleTasks() []entity.Task {
	return []entity.Task{
		task("late", -2, entity.PriorityLow, entity.StatusPending),
		task("now", 0, entity.PriorityHigh, entity.StatusPending),
		task("now-low", 0, entity.PriorityLow, entity.StatusPending),
		task("soon", 1, entity.PriorityMedium, entity.StatusPending),
		task("later", 9, entity.PriorityHigh, entity.StatusPending),
		task("done-late", -5, entity.PriorityHigh, entity.StatusCompleted),
		task("done-now", 0, entity.PriorityMedium, entity.StatusCompleted),
	}
}

func TestTaskViewsPartition(t *testing.T) {
	e := engine()
	tasks := sampleTasks()

	today := ids(e.TodayTasks(tasks))
	upcoming := ids(e.UpcomingTasks(tasks))
	overdue := ids(e.OverdueTasks(tasks))
	completed := ids(e.CompletedTasks(tasks))

	assert.Equal(t, []string{"now", "now-low"}, today)
	assert.Equal(t, []string{"soon", "later"}, upcoming)
	assert.Equal(t, []string{"late"}, overdue)
	assert.Equal(t, []string{"done-late", "done-now"}, completed)
	assert.Equal(t, []string{"soon"}, ids(e.TomorrowTasks(tasks)))

	seen := map[string]int{}
	for _, view := range [][]string{today, upcoming, overdue, completed} {
		for _, id := range view {
			seen[id]++
		}
	}
	require.Len(t, seen, len(tasks))
	for id, n := range seen {
		assert.Equalf(t, 1, n, "task %s appears in %d views", id, n)
	}
}

func TestViewsDoNotMutateInput(t *testing.T) {
	e := engine()
	tasks := sampleTasks()
	before := ids(tasks)

	_ = SortTasks(tasks)
	_ = e.FilterTasks(TasksAll, tasks)

	assert.Equal(t, before, ids(tasks))
}

func TestProgress(t *testing.T) {
	four := []entity.Task{
		task("a", 0, entity.PriorityLow, entity.StatusCompleted),
		task("b", 0, entity.PriorityLow, entity.StatusPending),
		task("c", 0, entity.PriorityLow, entity.StatusPending),
		task("d", 0, entity.PriorityLow, entity.StatusPending),
	}
	tests := map[string]struct {
		tasks []entity.Task
		want  int
	}{
		"empty":          {tasks: nil, want: 0},
		"one of four":    {tasks: four, want: 25},
		"none done":      {tasks: four[1:], want: 0},
		"one of seven":   {tasks: append(append([]entity.Task{}, four...), four[1:]...), want: 14},
		"two of three":   {tasks: []entity.Task{four[0], four[0], four[1]}, want: 67},
		"one of three":   {tasks: []entity.Task{four[0], four[1], four[2]}, want: 33},
		"all completed":  {tasks: []entity.Task{four[0], four[0]}, want: 100},
		"single pending": {tasks: four[1:2], want: 0},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Progress(tc.tasks))
		})
	}
}

func TestEventViews(t *testing.T) {
	e := engine()
	events := []entity.Event{
		{ID: "hackathon", EventName: "Hackathon", RegistrationDeadline: day(-1)},
		{ID: "fair", EventName: "Career Fair", RegistrationDeadline: day(0)},
		{ID: "expo", EventName: "Expo", RegistrationDeadline: day(1)},
		{ID: "summit", EventName: "Summit", RegistrationDeadline: day(30)},
	}

	assert.Equal(t, []string{"hackathon"}, ids(e.MissedEvents(events)))
	assert.Equal(t, []string{"fair", "expo", "summit"}, ids(e.UpcomingEvents(events)))
	assert.Equal(t, []string{"fair", "expo"}, ids(e.ClosingEvents(events)))
}

func TestUrgentCount(t *testing.T) {
	e := engine()
	events := []entity.Event{
		{ID: "a", RegistrationDeadline: day(0)},
		{ID: "b", RegistrationDeadline: day(1)},
		{ID: "c", RegistrationDeadline: day(2)},
		{ID: "d", RegistrationDeadline: day(-1)},
	}
	// overdue "late" + high priority "now" + events a and b
	assert.Equal(t, 4, e.UrgentCount(sampleTasks(), events))
	assert.Equal(t, 0, e.UrgentCount(nil, nil))
}

func TestSortTasks(t *testing.T) {
	tasks := []entity.Task{
		task("done-high", -1, entity.PriorityHigh, entity.StatusCompleted),
		task("low-early", -3, entity.PriorityLow, entity.StatusPending),
		task("high-late", 4, entity.PriorityHigh, entity.StatusPending),
		task("medium", 0, entity.PriorityMedium, entity.StatusPending),
		task("high-early", 1, entity.PriorityHigh, entity.StatusPending),
		task("done-low", -9, entity.PriorityLow, entity.StatusCompleted),
	}
	got := ids(SortTasks(tasks))
	assert.Equal(t, []string{"high-early", "high-late", "medium", "low-early", "done-high", "done-low"}, got)
}

func TestSortTasksIsStable(t *testing.T) {
	tasks := []entity.Task{
		task("first", 2, entity.PriorityLow, entity.StatusPending),
		task("second", 2, entity.PriorityLow, entity.StatusPending),
		task("third", 2, entity.PriorityLow, entity.StatusPending),
	}
	assert.Equal(t, []string{"first", "second", "third"}, ids(SortTasks(tasks)))
}

func TestSortEvents(t *testing.T) {
	events := []entity.Event{
		{ID: "c", RegistrationDeadline: day(5)},
		{ID: "a", RegistrationDeadline: day(-2)},
		{ID: "b", RegistrationDeadline: day(0)},
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids(SortEvents(events)))
}

func TestGroupNotes(t *testing.T) {
	e := engine()
	notes := []entity.Note{
		{ID: "old", Content: "old", Date: day(-20)},
		{ID: "today", Content: "today", Date: day(0)},
		{ID: "week", Content: "week", Date: day(-3)},
		{ID: "yesterday", Content: "yesterday", Date: day(-1)},
	}

	groups := e.GroupNotes(notes)

	require.Len(t, groups, 4)
	labels := make([]string, 0, len(groups))
	for _, g := range groups {
		labels = append(labels, g.Label)
		assert.Lenf(t, g.Notes, 1, "group %s", g.Label)
	}
	assert.Equal(t, []string{GroupToday, GroupYesterday, GroupThisWeek, GroupOlder}, labels)
	assert.Equal(t, "today", groups[0].Notes[0].ID)
	assert.Equal(t, "yesterday", groups[1].Notes[0].ID)
	assert.Equal(t, "week", groups[2].Notes[0].ID)
	assert.Equal(t, "old", groups[3].Notes[0].ID)
}

func TestGroupNotesBoundaries(t *testing.T) {
	e := engine()
	notes := []entity.Note{
		{ID: "seven", Date: day(-7)},
		{ID: "eight", Date: day(-8)},
		{ID: "future", Date: day(2)},
	}

	groups := e.GroupNotes(notes)

	require.Len(t, groups, 3)
	assert.Equal(t, GroupToday, groups[0].Label)
	assert.Equal(t, []string{"future"}, ids(groups[0].Notes))
	assert.Equal(t, GroupThisWeek, groups[1].Label)
	assert.Equal(t, []string{"seven"}, ids(groups[1].Notes))
	assert.Equal(t, GroupOlder, groups[2].Label)
	assert.Equal(t, []string{"eight"}, ids(groups[2].Notes))
}

func TestGroupNotesEmpty(t *testing.T) {
	assert.Empty(t, engine().GroupNotes(nil))
}

func TestFilters(t *testing.T) {
	e := engine()
	tasks := sampleTasks()

	assert.Equal(t, []string{"now", "now-low"}, ids(e.FilterTasks(TasksToday, tasks)))
	assert.Equal(t, []string{"later", "soon"}, ids(e.FilterTasks(TasksUpcoming, tasks)))
	assert.Len(t, e.FilterTasks(TasksAll, tasks), len(tasks))

	counts := e.TaskCounts(tasks)
	assert.Equal(t, map[TaskFilter]int{
		TasksAll:       7,
		TasksToday:     2,
		TasksUpcoming:  2,
		TasksOverdue:   1,
		TasksCompleted: 2,
	}, counts)

	f, err := ParseTaskFilter(" Overdue ")
	require.NoError(t, err)
	assert.Equal(t, TasksOverdue, f)
	_, err = ParseTaskFilter("someday")
	assert.Error(t, err)

	ef, err := ParseEventFilter("")
	require.NoError(t, err)
	assert.Equal(t, EventsAll, ef)
	_, err = ParseEventFilter("later")
	assert.Error(t, err)
}

func TestDashboard(t *testing.T) {
	e := engine()
	tasks := append(sampleTasks(),
		task("late-2", -3, entity.PriorityHigh, entity.StatusPending),
		task("late-3", -4, entity.PriorityMedium, entity.StatusPending),
		task("late-4", -1, entity.PriorityHigh, entity.StatusPending),
	)
	events := []entity.Event{
		{ID: "e4", RegistrationDeadline: day(9)},
		{ID: "e1", RegistrationDeadline: day(0)},
		{ID: "gone", RegistrationDeadline: day(-1)},
		{ID: "e2", RegistrationDeadline: day(1)},
		{ID: "e3", RegistrationDeadline: day(3)},
	}
	notes := []entity.Note{
		{ID: "n1", Date: day(0)},
		{ID: "n2", Date: day(-1)},
	}

	d := e.Dashboard(tasks, events, notes)

	assert.Equal(t, "Good morning", d.Greeting)
	assert.True(t, d.Date.Equal(day(0)))
	assert.Equal(t, Stats{Pending: 8, Completed: 2, Overdue: 4, Progress: 20, Urgent: 7}, d.Stats)
	assert.Equal(t, []string{"late-2", "late-4", "late-3"}, ids(d.OverdueTasks))
	assert.Equal(t, []string{"now", "now-low"}, ids(d.TodayTasks))
	assert.Equal(t, []string{"e1", "e2", "e3"}, ids(d.UpcomingEvents))
	assert.Equal(t, []string{"n1"}, ids(d.TodayNotes))
}

func TestGreeting(t *testing.T) {
	at := func(h int) time.Time { return time.Date(2024, 1, 1, h, 0, 0, 0, time.Local) }
	assert.Equal(t, "Good morning", Greeting(at(0)))
	assert.Equal(t, "Good morning", Greeting(at(11)))
	assert.Equal(t, "Good afternoon", Greeting(at(12)))
	assert.Equal(t, "Good afternoon", Greeting(at(16)))
	assert.Equal(t, "Good evening", Greeting(at(17)))
}
