package mongo

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFlattenZips(t *testing.T) {
	cases := []struct {
		name  string
		field interface{}
		want  []string
	}{
		{"array of strings", primitive.A{"90210", "08701"}, []string{"90210", "08701"}},
		{"array with numbers", primitive.A{int32(90210), "08701"}, []string{"90210", "08701"}},
		{"semicolon string", "90210; 08701;8701", []string{"90210", "08701", "8701"}},
		{"single value string", "90210", []string{"90210"}},
		{"drops nan cells", primitive.A{"90210", "nan", "NaN", ""}, []string{"90210"}},
		{"nil field", nil, nil},
		{"empty string", "", []string{}},
		{"scalar fallback", int64(90210), []string{"90210"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := flattenZips(tc.field)
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("flattenZips(%v) = %v, want %v", tc.field, got, tc.want)
			}
		})
	}
}
