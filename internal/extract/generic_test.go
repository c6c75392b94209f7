package extract

import (
	"testing"
)

func TestKeyValuesSplitsSharedLines(t *testing.T) {
	fields := fieldMap(extractKeyValues("Name: JOHN DOE Date: 01/01/2020"))

	requireField(t, fields, "name", "JOHN DOE")
	requireField(t, fields, "date", "01/01/2020")
}

func TestKeyValuesNormalizesLabels(t *testing.T) {
	fields := fieldMap(extractKeyValues("Terms & Conditions: NET 30 DAYS\nPlace/Date: DUBAI 2024"))

	requireField(t, fields, "terms_and_conditions", "NET 30 DAYS")
	requireField(t, fields, "place_date", "DUBAI 2024")
}

func TestKeyValuesRejectsNoise(t *testing.T) {
	fields := fieldMap(extractKeyValues("Code: @@@@@@@@\nOk: AB\nSomething else entirely"))

	if len(fields) != 0 {
		t.Fatalf("expected no fields, got %v", fields)
	}
}
