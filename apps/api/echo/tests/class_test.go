package tests

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/jnedu/classroom2030/core/class"
	testutil "github.com/jnedu/classroom2030/tests"
)

func Test_classApi_query(t *testing.T) {
	app, _, clsRepo := newApp(t)

	// schedules far in the past/future so statuses are stable under the
	// server's wall clock
	c1 := testutil.CreateClass(t, clsRepo, "1", "AI 수학 교실", "김민지", "수학", "초등", "2020년 10월 22일", "10:45 - 11:30", "1층 강당", "전주")
	c2 := testutil.CreateClass(t, clsRepo, "2", "VR 과학 탐험", "이준호", "과학", "중등", "2020년 10월 23일", "09:00 - 09:40", "2층 교실", "군산")
	c10 := testutil.CreateClass(t, clsRepo, "10", "코딩 놀이터", "박수진", "정보", "초등", "2099년 10월 24일", "13:00 - 13:40", "정보실", "전주")

	c1.Status, c2.Status = class.StatusCompleted, class.StatusCompleted
	c10.Status = class.StatusUpcoming

	path := func(params url.Values) string {
		return "/api/classes?" + params.Encode()
	}
	empty := marchallList(t, []interface{}{}...)

	tests := []httpTest{
		// "10" after "2": insertion order, not lexicographic id order
		{name: "all", path: "/api/classes", wantData: marchallList(t, c1, c2, c10)},
		{name: "search title", path: path(url.Values{"search": {"수학"}}), wantData: marchallList(t, c1)},
		{name: "search teacher", path: path(url.Values{"search": {"이준호"}}), wantData: marchallList(t, c2)},
		{name: "search (unknown)", path: path(url.Values{"search": {"lol"}}), wantData: empty},
		{name: "subject", path: path(url.Values{"subject": {"수학"}}), wantData: marchallList(t, c1)},
		{name: "subject multi", path: path(url.Values{"subject": {"과학", "정보"}}), wantData: marchallList(t, c2, c10)},
		{name: "grade", path: path(url.Values{"grade": {"초등"}}), wantData: marchallList(t, c1, c10)},
		{name: "region", path: path(url.Values{"region": {"군산"}}), wantData: marchallList(t, c2)},
		{name: "status completed", path: path(url.Values{"status": {"completed"}}), wantData: marchallList(t, c1, c2)},
		{name: "status upcoming", path: path(url.Values{"status": {"upcoming"}}), wantData: marchallList(t, c10)},
		{name: "date range", path: path(url.Values{"start_date": {"2020-10-23"}, "end_date": {"2020-10-23"}}), wantData: marchallList(t, c2)},
		{name: "start date only", path: path(url.Values{"start_date": {"2020-10-23"}}), wantData: marchallList(t, c2, c10)},
		{
			name: "combined", path: path(url.Values{"search": {"교실"}, "subject": {"수학"}, "status": {"completed"}}),
			wantData: marchallList(t, c1),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.wantCode = http.StatusOK
			req, rec := newRequest(http.MethodGet, tt.path)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_classApi_retrieve(t *testing.T) {
	app, _, clsRepo := newApp(t)

	cls := testutil.CreateClass(t, clsRepo, "1", "AI 수학 교실", "김민지", "수학", "초등", "2020년 10월 22일", "10:45 - 11:30", "1층 강당", "전주")
	cls.Status = class.StatusCompleted

	tests := []httpTest{
		{name: "found", path: "/api/classes/1", wantCode: http.StatusOK, wantData: marchallObj(t, cls)},
		{
			name: "not found", path: "/api/classes/nope",
			wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "class not found"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodGet, tt.path)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
