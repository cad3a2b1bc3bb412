package zero

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOfType(t *testing.T) {

	type entity struct {
		ID   int
		Name string
		Tags []string
	}

	var testCases = []struct {
		description string
		rType       reflect.Type
		expect      interface{}
	}{
		{
			description: "arithmetic type",
			rType:       reflect.TypeOf(0),
			expect:      0,
		},
		{
			description: "float type",
			rType:       reflect.TypeOf(3.14),
			expect:      float64(0),
		},
		{
			description: "bool type",
			rType:       reflect.TypeOf(true),
			expect:      false,
		},
		{
			description: "pointer type",
			rType:       reflect.TypeOf((*int)(nil)),
			expect:      (*int)(nil),
		},
		{
			description: "map type",
			rType:       reflect.TypeOf(map[string]int{}),
			expect:      (map[string]int)(nil),
		},
		{
			description: "slice type",
			rType:       reflect.TypeOf([]string{}),
			expect:      ([]string)(nil),
		},
		{
			description: "string type",
			rType:       reflect.TypeOf(""),
			expect:      "",
		},
		{
			description: "composite type",
			rType:       reflect.TypeOf(entity{}),
			expect:      entity{},
		},
		{
			description: "nil type",
			rType:       nil,
			expect:      nil,
		},
	}

	for _, testCase := range testCases {
		actual := OfType(testCase.rType)
		assert.Equal(t, testCase.expect, actual, testCase.description)
		if testCase.rType == nil {
			continue
		}
		assert.Equal(t, testCase.rType, reflect.TypeOf(actual), "dynamic type for "+testCase.description)
	}
}
