package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/titanic-survival/internal/survival"
	"github.com/jonathan/titanic-survival/internal/types"
)

// sampleAnalysis mirrors testdata/valid/passengers.csv: five women who all survived,
// five men who all died, 2/3 survivors in 1st class, 1/1 in 2nd, 2/6 in 3rd.
func sampleAnalysis(t *testing.T) *types.SurvivalAnalysis {
	t.Helper()

	rows := []struct {
		survived bool
		sex      types.Sex
		class    types.PassengerClass
	}{
		{false, types.SexMale, types.ThirdClass},
		{true, types.SexFemale, types.FirstClass},
		{true, types.SexFemale, types.ThirdClass},
		{true, types.SexFemale, types.FirstClass},
		{false, types.SexMale, types.ThirdClass},
		{false, types.SexMale, types.ThirdClass},
		{false, types.SexMale, types.FirstClass},
		{false, types.SexMale, types.ThirdClass},
		{true, types.SexFemale, types.ThirdClass},
		{true, types.SexFemale, types.SecondClass},
	}

	ds := &types.Dataset{Source: "passengers.csv", ByName: true}
	for i, r := range rows {
		ds.Records = append(ds.Records, types.PassengerRecord{
			PassengerID: i + 1,
			Survived:    r.survived,
			Sex:         r.sex,
			Class:       r.class,
		})
	}

	a, err := survival.Analyze(ds)
	require.NoError(t, err)
	return a
}

func TestCenter(t *testing.T) {
	assert.Equal(t, " Survived ", center("Survived", 10))
	assert.Equal(t, "Row Total ", center("Row Total", 10))
	assert.Equal(t, "  female  ", center("female", 10))
	assert.Equal(t, "    5     ", center("5", 10))
	assert.Equal(t, "    10    ", center("10", 10))
	assert.Equal(t, "          ", center("", 10))
	assert.Equal(t, "much longer than ten", center("much longer than ten", 10))
}

func TestFormatTable_Sex(t *testing.T) {
	a := sampleAnalysis(t)

	want := strings.Join([]string{
		"           Survived  !Survive Row Total ",
		"  female      5         0         5     ",
		"   male       0         5         5     ",
		"Col Total     5         5         10    ",
	}, "\n") + "\n"

	assert.Equal(t, want, FormatTable(a.Sex))
}

func TestFormatTable_RowTotals(t *testing.T) {
	a := sampleAnalysis(t)

	for _, b := range []types.Breakdown{a.Sex, a.Class} {
		lines := strings.Split(strings.TrimRight(FormatTable(b), "\n"), "\n")
		require.Len(t, lines, len(b.Rows)+2)

		for _, line := range lines[1:] {
			require.Len(t, line, 4*columnWidth)
			fields := strings.Fields(line[columnWidth:])
			require.Len(t, fields, 3)

			survived, err := strconv.Atoi(fields[0])
			require.NoError(t, err)
			died, err := strconv.Atoi(fields[1])
			require.NoError(t, err)
			total, err := strconv.Atoi(fields[2])
			require.NoError(t, err)
			assert.Equal(t, total, survived+died)
		}

		last := strings.Fields(lines[len(lines)-1][columnWidth:])
		assert.Equal(t, strconv.Itoa(a.Passengers), last[2])
	}
}

func TestSexNarrative(t *testing.T) {
	lines := SexNarrative(sampleAnalysis(t))

	assert.Equal(t, []string{
		"The probability of survival, P(survival), is 50.00%.",
		"The female survival rate, P(survival|female), is 100.00%.",
		"The male survival rate, P(survival|male), is 0.00%.",
		"The null hypothesis, P(survival|female) = P(survival) can be rejected",
		"Being female provides a 2.00X probability of survival",
	}, lines)
}

func TestSexNarrative_EqualRates(t *testing.T) {
	a := sampleAnalysis(t)
	a.Sex.Rows[0].Rate = a.Overall.Rate
	a.FemaleRatio = 1

	lines := SexNarrative(a)
	assert.Contains(t, lines, "The observed rates do not contradict the null hypothesis, P(survival|female) = P(survival)")
	assert.Contains(t, lines, "Being female provides a 1.00X probability of survival")
}

func TestClassNarrative(t *testing.T) {
	lines := ClassNarrative(sampleAnalysis(t))

	assert.Equal(t, []string{
		"The probability of survival, P(survival), is 50.00%.",
		"The 1st class survival rate, P(survival|1st class), is 66.67%.",
		"The 2nd class survival rate, P(survival|2nd class), is 100.00%.",
		"The 3rd class survival rate, P(survival|3rd class), is 33.33%.",
		"Being in 1st class provides a 1.33X probability of survival",
		"Being in 2nd class provides a 2.00X probability of survival",
		"Being in 3rd class provides a 0.67X probability of survival",
	}, lines)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleAnalysis(t)))

	out := buf.String()
	assert.Equal(t, 4, strings.Count(out, Break+"\n"))
	assert.Contains(t, out, "  female      5         0         5     \n")
	assert.Contains(t, out, "   1st        2         1         3     \n")
	assert.Contains(t, out, "   2nd        1         0         1     \n")
	assert.Contains(t, out, "   3rd        2         4         6     \n")
	assert.Equal(t, 2, strings.Count(out, "Col Total     5         5         10    \n"))

	sexTable := strings.Index(out, "  female  ")
	classTable := strings.Index(out, "   1st    ")
	assert.Less(t, sexTable, classTable, "sex table comes before class table")
}

func TestWriteText_NilAnalysis(t *testing.T) {
	err := WriteText(&bytes.Buffer{}, nil)
	require.Error(t, err)

	var renderErr *RenderError
	assert.True(t, errors.As(err, &renderErr))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestWriteText_WriterFailure(t *testing.T) {
	err := WriteText(failingWriter{}, sampleAnalysis(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed pipe")
}

func TestBuildReport(t *testing.T) {
	a := sampleAnalysis(t)
	runID := uuid.New()
	generated := time.Date(2026, 10, 19, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))

	r := BuildReport(a, "passengers.csv", runID, generated)

	assert.Equal(t, runID, r.RunID)
	assert.Equal(t, time.UTC, r.GeneratedAt.Location())
	assert.Equal(t, 10, r.Passengers)
	require.Len(t, r.Breakdowns, 2)
	assert.Equal(t, survival.DimensionSex, r.Breakdowns[0].Dimension)
	assert.Equal(t, survival.DimensionClass, r.Breakdowns[1].Dimension)
	assert.InDelta(t, 2.0, r.Ratios[FemaleRatioKey], 1e-9)
	assert.InDelta(t, 2.0, r.Ratios["2nd"], 1e-9)
}

func TestMarshalReport_MatchesSchema(t *testing.T) {
	r := BuildReport(sampleAnalysis(t), "passengers.csv", uuid.New(), time.Now())

	content, err := MarshalReport(r)
	require.NoError(t, err)

	var decoded types.SurvivalReport
	require.NoError(t, json.Unmarshal(content, &decoded))
	assert.Equal(t, r.RunID, decoded.RunID)
	assert.Equal(t, r.Overall, decoded.Overall)
}

func TestMarshalReport_SchemaViolation(t *testing.T) {
	r := BuildReport(sampleAnalysis(t), "passengers.csv", uuid.New(), time.Now())
	r.Overall.Rate = 2

	_, err := MarshalReport(r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report does not match schema")
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.json")
	r := BuildReport(sampleAnalysis(t), "passengers.csv", uuid.New(), time.Now())

	require.NoError(t, WriteJSON(path, r))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"dimension": "class"`)
	assert.Contains(t, string(content), `"source": "passengers.csv"`)
}

func TestSaveChart(t *testing.T) {
	a := sampleAnalysis(t)
	tmpDir := t.TempDir()

	for _, ext := range []string{".png", ".svg"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(tmpDir, "rates"+ext)
			require.NoError(t, SaveChart(path, a))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Greater(t, info.Size(), int64(0))
		})
	}
}

func TestSaveChart_UnsupportedFormat(t *testing.T) {
	err := SaveChart(filepath.Join(t.TempDir(), "rates.gif"), sampleAnalysis(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported chart format")
}

func TestSupportedChartPath(t *testing.T) {
	assert.True(t, SupportedChartPath("a/b/chart.PNG"))
	assert.True(t, SupportedChartPath("chart.pdf"))
	assert.False(t, SupportedChartPath("chart"))
	assert.False(t, SupportedChartPath("chart.jpeg"))
}
