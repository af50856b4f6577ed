package task

import "testing"

func TestFilter_IsEmpty(t *testing.T) {
	t.Parallel()

	if !(Filter{}).IsEmpty() {
		t.Error("IsEmpty() on zero filter = false, want true")
	}
	if (Filter{AuthorID: int64Ptr(1)}).IsEmpty() {
		t.Error("IsEmpty() with author constraint = true, want false")
	}
}

func TestFilter_Matches(t *testing.T) {
	t.Parallel()

	subject := Task{
		ID:         1,
		EventID:    10,
		AuthorID:   42,
		AssigneeID: int64Ptr(7),
	}
	unassigned := Task{
		ID:       2,
		EventID:  10,
		AuthorID: 42,
	}

	tests := []struct {
		name   string
		filter Filter
		task   Task
		want   bool
	}{
		{name: "empty filter matches everything", filter: Filter{}, task: subject, want: true},
		{name: "event match", filter: Filter{EventID: int64Ptr(10)}, task: subject, want: true},
		{name: "event mismatch", filter: Filter{EventID: int64Ptr(20)}, task: subject, want: false},
		{name: "assignee match", filter: Filter{AssigneeID: int64Ptr(7)}, task: subject, want: true},
		{name: "assignee mismatch", filter: Filter{AssigneeID: int64Ptr(8)}, task: subject, want: false},
		{name: "assignee constraint never matches unassigned", filter: Filter{AssigneeID: int64Ptr(7)}, task: unassigned, want: false},
		{name: "author match", filter: Filter{AuthorID: int64Ptr(42)}, task: subject, want: true},
		{name: "author mismatch", filter: Filter{AuthorID: int64Ptr(1)}, task: subject, want: false},
		{
			name:   "conjunction requires every constraint",
			filter: Filter{EventID: int64Ptr(10), AuthorID: int64Ptr(1)},
			task:   subject,
			want:   false,
		},
		{
			name:   "full triple match",
			filter: Filter{EventID: int64Ptr(10), AssigneeID: int64Ptr(7), AuthorID: int64Ptr(42)},
			task:   subject,
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.filter.Matches(&tt.task); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}
