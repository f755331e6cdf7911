package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/titanic-survival/internal/types"
)

// Column names of the consumed fields, as they appear in the header row.
const (
	ColPassengerID = "PassengerId"
	ColSurvived    = "Survived"
	ColClass       = "Pclass"
	ColSex         = "Sex"
	ColAge         = "Age"
	ColSibSp       = "SibSp"
	ColParch       = "Parch"
	ColFare        = "Fare"
	ColEmbarked    = "Embarked"
)

var consumedColumns = []string{
	ColPassengerID, ColSurvived, ColClass, ColSex, ColAge,
	ColSibSp, ColParch, ColFare, ColEmbarked,
}

// legacyWidth is the column count of the original manifest layout:
// PassengerId, Survived, Pclass, Name, Sex, Age, SibSp, Parch, Ticket, Fare, Cabin, Embarked.
const legacyWidth = 12

// legacyPositions skips Name (3), Ticket (8) and Cabin (10).
var legacyPositions = map[string]int{
	ColPassengerID: 0,
	ColSurvived:    1,
	ColClass:       2,
	ColSex:         4,
	ColAge:         5,
	ColSibSp:       6,
	ColParch:       7,
	ColFare:        9,
	ColEmbarked:    11,
}

// Load reads the passenger file at path into a Dataset.
func Load(path string) (*types.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to open file %s", path),
			Cause:   err,
		}
	}
	defer file.Close()

	return Parse(bufio.NewReader(file), path)
}

// Parse decodes a comma-delimited manifest with a header row.
// Columns are resolved by header name; a header without the expected names but with
// the legacy column count falls back to fixed positions.
func Parse(r io.Reader, source string) (*types.Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &LoadError{Message: fmt.Sprintf("file %s is empty", source)}
	}
	if err != nil {
		return nil, &LoadError{Message: "failed to read header row", Cause: err}
	}

	index, byName, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	validate := validator.New()
	ds := &types.Dataset{Source: source, ByName: byName}

	for row := 1; ; row++ {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &LoadError{
				Message: fmt.Sprintf("malformed row %d", row),
				Cause:   err,
			}
		}

		passenger, err := decodeRecord(rec, index, row)
		if err != nil {
			return nil, &LoadError{Message: "invalid field", Cause: err}
		}
		if err := validate.Struct(passenger); err != nil {
			return nil, &LoadError{
				Message: fmt.Sprintf("row %d failed validation", row),
				Cause:   err,
			}
		}
		ds.Records = append(ds.Records, passenger)
	}

	if len(ds.Records) == 0 {
		return nil, &LoadError{Message: fmt.Sprintf("file %s has no passenger rows", source)}
	}

	return ds, nil
}

func resolveColumns(header []string) (map[string]int, bool, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}

	var missing []string
	for _, col := range consumedColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) == 0 {
		return index, true, nil
	}

	if len(header) == legacyWidth {
		return legacyPositions, false, nil
	}

	return nil, false, &LoadError{
		Message: fmt.Sprintf("header is missing columns %s", strings.Join(missing, ", ")),
	}
}

func decodeRecord(rec []string, index map[string]int, row int) (types.PassengerRecord, error) {
	field := func(col string) string {
		return strings.TrimSpace(rec[index[col]])
	}
	coerceErr := func(col string, cause error) error {
		return &TypeCoercionError{Row: row, Column: col, Value: field(col), Cause: cause}
	}

	var p types.PassengerRecord
	var err error

	if p.PassengerID, err = strconv.Atoi(field(ColPassengerID)); err != nil {
		return p, coerceErr(ColPassengerID, err)
	}

	switch field(ColSurvived) {
	case "0":
		p.Survived = false
	case "1":
		p.Survived = true
	default:
		return p, coerceErr(ColSurvived, errors.New("expected 0 or 1"))
	}

	class, err := strconv.Atoi(field(ColClass))
	if err != nil {
		return p, coerceErr(ColClass, err)
	}
	p.Class = types.PassengerClass(class)

	p.Sex = types.Sex(field(ColSex))

	if v := field(ColAge); v != "" {
		age, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return p, coerceErr(ColAge, err)
		}
		p.Age = &age
	}

	if p.SiblingsSpouses, err = strconv.Atoi(field(ColSibSp)); err != nil {
		return p, coerceErr(ColSibSp, err)
	}
	if p.ParentsChildren, err = strconv.Atoi(field(ColParch)); err != nil {
		return p, coerceErr(ColParch, err)
	}
	if p.Fare, err = strconv.ParseFloat(field(ColFare), 64); err != nil {
		return p, coerceErr(ColFare, err)
	}

	p.Embarked = field(ColEmbarked)

	return p, nil
}
