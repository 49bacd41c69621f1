package class

import (
	"reflect"
	"testing"
)

func TestApply(t *testing.T) {
	classes := []Class{
		{
			ID: "1", Title: "AI 수학 교실", Teacher: "김민지", Subject: "수학", Grade: "초등",
			Date: "2025년 10월 22일", Time: "10:45 - 11:30", Region: "전주", Status: StatusCompleted,
			Description: "인공지능 도구로 도형을 탐구합니다",
		},
		{
			ID: "2", Title: "VR 과학 탐험", Teacher: "이준호", Subject: "과학", Grade: "중등",
			Date: "2025년 10월 23일", Time: "09:00 - 09:40", Region: "군산", Status: StatusOngoing,
			Description: "가상현실로 태양계를 여행합니다",
		},
		{
			ID: "3", Title: "코딩 놀이터", Teacher: "박수진", Subject: "정보", Grade: "초등",
			Date: "2025년 10월 24일", Time: "13:00 - 13:40", Region: "전주", Status: StatusUpcoming,
			Description: "블록 코딩으로 게임을 만듭니다",
		},
		{
			ID: "4", Title: "미래 수학 여행", Teacher: "김민지", Subject: "수학", Grade: "고등",
			Date: "2025년 10월 25일", Time: "10:00 - 10:40", Region: "익산", Status: StatusUpcoming,
			Description: "데이터로 확률을 체험합니다",
		},
	}
	ids := func(classes []Class) []string {
		out := make([]string, 0, len(classes))
		for _, c := range classes {
			out = append(out, c.ID)
		}
		return out
	}

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "empty filter keeps all", filter: Filter{}, want: []string{"1", "2", "3", "4"}},
		{name: "search title", filter: Filter{Search: "수학"}, want: []string{"1", "4"}},
		{name: "search teacher", filter: Filter{Search: "이준호"}, want: []string{"2"}},
		{name: "search description", filter: Filter{Search: "게임"}, want: []string{"3"}},
		{name: "search case-insensitive", filter: Filter{Search: "vr"}, want: []string{"2"}},
		{name: "search no match", filter: Filter{Search: "영어"}, want: []string{}},
		{name: "subject", filter: Filter{Subjects: []string{"수학"}}, want: []string{"1", "4"}},
		{name: "multiple subjects", filter: Filter{Subjects: []string{"과학", "정보"}}, want: []string{"2", "3"}},
		{name: "grade", filter: Filter{Grades: []string{"초등"}}, want: []string{"1", "3"}},
		{name: "region", filter: Filter{Regions: []string{"전주"}}, want: []string{"1", "3"}},
		{name: "status", filter: Filter{Statuses: []string{"upcoming"}}, want: []string{"3", "4"}},
		{name: "date range", filter: Filter{StartDate: "2025-10-23", EndDate: "2025-10-24"}, want: []string{"2", "3"}},
		{name: "start date only", filter: Filter{StartDate: "2025-10-24"}, want: []string{"3", "4"}},
		{name: "end date only", filter: Filter{EndDate: "2025-10-22"}, want: []string{"1"}},
		{
			name:   "constraints AND together",
			filter: Filter{Search: "수학", Subjects: []string{"수학"}, Grades: []string{"고등"}},
			want:   []string{"4"},
		},
		{
			name:   "all constraints",
			filter: Filter{Search: "코딩", Subjects: []string{"정보"}, Grades: []string{"초등"}, Regions: []string{"전주"}, Statuses: []string{"upcoming"}, StartDate: "2025-10-01", EndDate: "2025-10-31"},
			want:   []string{"3"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(classes, tt.filter)
			if !reflect.DeepEqual(ids(got), tt.want) {
				t.Errorf("Apply() = %v, want %v", ids(got), tt.want)
			}

			// filtering the result again must be a no-op
			again := Apply(got, tt.filter)
			if !reflect.DeepEqual(again, got) {
				t.Errorf("Apply() not idempotent: %v != %v", ids(again), ids(got))
			}
		})
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	classes := []Class{
		{ID: "1", Subject: "수학"},
		{ID: "2", Subject: "과학"},
		{ID: "3", Subject: "수학"},
	}
	snapshot := make([]Class, len(classes))
	copy(snapshot, classes)

	_ = Apply(classes, Filter{Subjects: []string{"과학"}})

	if !reflect.DeepEqual(classes, snapshot) {
		t.Errorf("Apply() mutated its input: %v", classes)
	}
}

func TestFilterIsEmpty(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{name: "zero value", filter: Filter{}, want: true},
		{name: "search set", filter: Filter{Search: "수학"}, want: false},
		{name: "subjects set", filter: Filter{Subjects: []string{"수학"}}, want: false},
		{name: "start date set", filter: Filter{StartDate: "2025-10-01"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}
