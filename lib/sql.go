package lib

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"

	"github.com/lib/pq"
)

var _ driver.Valuer = Value{}

// Value lets runtime values be passed as query arguments.
func (v Value) Value() (driver.Value, error) {
	switch v.kind {
	case KindNil:
		return nil, nil
	case KindString:
		return v.text, nil
	case KindNumber:
		return v.num, nil
	case KindBool:
		return v.flag, nil
	default:
		return nil, fmt.Errorf("cannot use %s as a query argument", v)
	}
}

// SQLLiteral renders v as a PostgreSQL literal. Identifiers become quoted
// identifiers.
func (v Value) SQLLiteral() string {
	switch v.kind {
	case KindIdentifier:
		return pq.QuoteIdentifier(v.text)
	case KindString:
		return pq.QuoteLiteral(v.text)
	case KindNumber:
		return sqlNumber(v.num)
	case KindBool:
		if v.flag {
			return "TRUE"
		}
		return "FALSE"
	default:
		return "NULL"
	}
}

func sqlNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return pq.QuoteLiteral("NaN") + "::float8"
	case math.IsInf(n, 1):
		return pq.QuoteLiteral("Infinity") + "::float8"
	case math.IsInf(n, -1):
		return pq.QuoteLiteral("-Infinity") + "::float8"
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}
