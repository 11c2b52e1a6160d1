package model

import (
	"sync"
	"testing"

	"gorm.io/gorm/schema"
)

// 串关赔率与概率没有上限（12 串 7.0 约 1.38e10），数值列不能用定长 decimal
func TestParlayNumericColumnsUnbounded(t *testing.T) {
	s, err := schema.Parse(&Parlay{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatalf("schema.Parse() error = %v", err)
	}
	if s.Table != "parlays" {
		t.Errorf("table = %q, want parlays", s.Table)
	}
	for _, column := range []string{"combined_odds", "probability", "potential_return"} {
		t.Run(column, func(t *testing.T) {
			f := s.LookUpField(column)
			if f == nil {
				t.Fatalf("column %s not found", column)
			}
			if f.DataType != "double precision" {
				t.Errorf("%s type = %q, want double precision", column, f.DataType)
			}
		})
	}
}
