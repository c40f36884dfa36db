package mongo

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/inmobilia/housing-api/internal/core/ports"
)

func intPtr(n int) *int { return &n }

// ---------------------------------------------------------------------------
// buildListFilter
// ---------------------------------------------------------------------------

func TestBuildListFilter_NoParams_OnlyRemovedGuard(t *testing.T) {
	got := buildListFilter(ports.ListUsersFilter{})

	want := bson.M{"removed": bson.M{"$ne": true}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected bare removed guard, got %#v", got)
	}
}

func TestBuildListFilter_ExactAge(t *testing.T) {
	got := buildListFilter(ports.ListUsersFilter{Age: intPtr(30)})

	want := bson.M{"$and": []bson.M{
		{"removed": bson.M{"$ne": true}},
		{"age": 30},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected filter: %#v", got)
	}
}

func TestBuildListFilter_AgeRange(t *testing.T) {
	cases := []struct {
		name   string
		filter ports.ListUsersFilter
		want   bson.M
	}{
		{
			name:   "both bounds",
			filter: ports.ListUsersFilter{MinAge: intPtr(20), MaxAge: intPtr(40)},
			want:   bson.M{"age": bson.M{"$gte": 20, "$lte": 40}},
		},
		{
			name:   "min only",
			filter: ports.ListUsersFilter{MinAge: intPtr(20)},
			want:   bson.M{"age": bson.M{"$gte": 20}},
		},
		{
			name:   "max only",
			filter: ports.ListUsersFilter{MaxAge: intPtr(40)},
			want:   bson.M{"age": bson.M{"$lte": 40}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := buildListFilter(tc.filter)
			and, ok := got["$and"].([]bson.M)
			if !ok || len(and) != 2 {
				t.Fatalf("expected 2 clauses, got %#v", got)
			}
			if !reflect.DeepEqual(and[1], tc.want) {
				t.Fatalf("expected range clause %#v, got %#v", tc.want, and[1])
			}
		})
	}
}

// Exact age and the range filter are independent clauses: when both are
// present, both must appear in the query.
func TestBuildListFilter_ExactAgeAndRangeCoexist(t *testing.T) {
	got := buildListFilter(ports.ListUsersFilter{
		Age:    intPtr(30),
		MinAge: intPtr(20),
		MaxAge: intPtr(40),
	})

	and, ok := got["$and"].([]bson.M)
	if !ok || len(and) != 3 {
		t.Fatalf("expected 3 clauses, got %#v", got)
	}
	if !reflect.DeepEqual(and[1], bson.M{"age": 30}) {
		t.Errorf("exact age clause missing: %#v", and[1])
	}
	if !reflect.DeepEqual(and[2], bson.M{"age": bson.M{"$gte": 20, "$lte": 40}}) {
		t.Errorf("range clause missing: %#v", and[2])
	}
}

func TestBuildListFilter_FieldSubstring(t *testing.T) {
	got := buildListFilter(ports.ListUsersFilter{
		Fields: map[string]string{"surname": "lee"},
	})

	and := got["$and"].([]bson.M)
	want := bson.M{"surname": bson.M{"$regex": "lee"}}
	if !reflect.DeepEqual(and[1], want) {
		t.Fatalf("expected substring clause %#v, got %#v", want, and[1])
	}
}

func TestBuildListFilter_RegexMetacharactersQuoted(t *testing.T) {
	got := buildListFilter(ports.ListUsersFilter{
		Fields: map[string]string{"email": "a.b+c@x"},
	})

	and := got["$and"].([]bson.M)
	pattern := and[1]["email"].(bson.M)["$regex"].(string)
	if pattern != `a\.b\+c@x` {
		t.Fatalf("filter value must be regex-quoted, got %q", pattern)
	}
}

func TestBuildListFilter_SearchOrClause(t *testing.T) {
	got := buildListFilter(ports.ListUsersFilter{Search: "ann"})

	and := got["$and"].([]bson.M)
	want := bson.M{"$or": []bson.M{
		{"name": bson.M{"$regex": "ann"}},
		{"email": bson.M{"$regex": "ann"}},
		{"surname": bson.M{"$regex": "ann"}},
	}}
	if !reflect.DeepEqual(and[1], want) {
		t.Fatalf("expected search clause %#v, got %#v", want, and[1])
	}
}

func TestBuildListFilter_SearchCombinedWithOtherFilters(t *testing.T) {
	got := buildListFilter(ports.ListUsersFilter{
		Age:    intPtr(25),
		Search: "ann",
	})

	and, ok := got["$and"].([]bson.M)
	if !ok || len(and) != 3 {
		t.Fatalf("search must AND against other filters, got %#v", got)
	}
}

// ---------------------------------------------------------------------------
// buildListOptions
// ---------------------------------------------------------------------------

func TestBuildListOptions_DefaultSortNameAsc(t *testing.T) {
	opts := buildListOptions(ports.ListUsersFilter{})

	want := bson.D{{Key: "name", Value: 1}}
	if !reflect.DeepEqual(opts.Sort, want) {
		t.Fatalf("expected default name asc sort, got %#v", opts.Sort)
	}
}

func TestBuildListOptions_ExplicitSort(t *testing.T) {
	opts := buildListOptions(ports.ListUsersFilter{SortBy: "age", Order: "desc"})

	want := bson.D{{Key: "age", Value: -1}}
	if !reflect.DeepEqual(opts.Sort, want) {
		t.Fatalf("expected age desc sort, got %#v", opts.Sort)
	}
}

// An unrecognised order value drops the sort directive entirely instead of
// falling back to the default ordering.
func TestBuildListOptions_InvalidOrderDropsSort(t *testing.T) {
	opts := buildListOptions(ports.ListUsersFilter{SortBy: "name", Order: "sideways"})

	if opts.Sort != nil {
		t.Fatalf("expected no sort directive, got %#v", opts.Sort)
	}
}

func TestBuildListOptions_Pagination(t *testing.T) {
	opts := buildListOptions(ports.ListUsersFilter{Page: 3})

	if opts.Skip == nil || *opts.Skip != 2*pageSize {
		t.Errorf("expected skip %d, got %v", 2*pageSize, opts.Skip)
	}
	if opts.Limit == nil || *opts.Limit != pageSize {
		t.Errorf("expected limit %d, got %v", pageSize, opts.Limit)
	}
}

func TestBuildListOptions_NoPageMeansUnpaginated(t *testing.T) {
	opts := buildListOptions(ports.ListUsersFilter{})

	if opts.Skip != nil || opts.Limit != nil {
		t.Fatalf("expected no pagination, got skip=%v limit=%v", opts.Skip, opts.Limit)
	}
}
