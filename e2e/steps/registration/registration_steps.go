package registration

import (
	"context"
	"fmt"
	"time"

	"github.com/cucumber/godog"

	"wcg/pkg/citizen"
	"wcg/pkg/testutil"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	Reset(ctx context.Context, rec citizen.Record) error
	Submit(ctx context.Context, rec citizen.Record) error
	Record() citizen.Record
	SetRecord(rec citizen.Record)
}

// RegisterSteps registers registration-related step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &registrationSteps{tc: tc}

	// Setup steps
	ctx.Step(`^the test citizen has been reset$`, steps.testCitizenHasBeenReset)
	ctx.Step(`^the test citizen record$`, steps.theTestCitizenRecord)
	ctx.Step(`^a citizen record:$`, steps.aCitizenRecord)
	ctx.Step(`^the record has "([^"]*)" set to "([^"]*)"$`, steps.recordHasFieldSetTo)
	ctx.Step(`^the record has "([^"]*)" left empty$`, steps.recordHasFieldLeftEmpty)
	ctx.Step(`^the record has a birth date (\d+) years ago$`, steps.recordHasBirthDateYearsAgo)

	// Request steps
	ctx.Step(`^I submit the record$`, steps.submitRecord)
	ctx.Step(`^I submit the record (\d+) times$`, steps.submitRecordTimes)
	ctx.Step(`^I submit the record again$`, steps.submitRecord)
}

type registrationSteps struct {
	tc TestContext
}

func (s *registrationSteps) testCitizenHasBeenReset(ctx context.Context) error {
	return s.tc.Reset(ctx, testutil.DefaultCitizen())
}

func (s *registrationSteps) theTestCitizenRecord(ctx context.Context) error {
	s.tc.SetRecord(testutil.DefaultCitizen())
	return nil
}

// aCitizenRecord builds a record from a two-column field/value table.
// Fields missing from the table are sent empty.
func (s *registrationSteps) aCitizenRecord(ctx context.Context, table *godog.Table) error {
	builder := testutil.NewCitizenBuilder()
	for _, name := range citizen.FieldNames {
		builder.Without(name)
	}
	for i, row := range table.Rows {
		if len(row.Cells) != 2 {
			return fmt.Errorf("row %d: expected field and value, got %d cells", i+1, len(row.Cells))
		}
		if err := set(builder, row.Cells[0].Value, row.Cells[1].Value); err != nil {
			return err
		}
	}
	s.tc.SetRecord(builder.Build())
	return nil
}

func (s *registrationSteps) recordHasFieldSetTo(ctx context.Context, field, value string) error {
	builder := fromRecord(s.tc.Record())
	if err := set(builder, field, value); err != nil {
		return err
	}
	s.tc.SetRecord(builder.Build())
	return nil
}

func (s *registrationSteps) recordHasFieldLeftEmpty(ctx context.Context, field string) error {
	return s.recordHasFieldSetTo(ctx, field, "")
}

// recordHasBirthDateYearsAgo keeps age checks stable as the calendar moves on.
func (s *registrationSteps) recordHasBirthDateYearsAgo(ctx context.Context, years int) error {
	birthDate := time.Now().AddDate(-years, 0, 0).Format("02-01-2006")
	return s.recordHasFieldSetTo(ctx, citizen.FieldBirthDate, birthDate)
}

func (s *registrationSteps) submitRecord(ctx context.Context) error {
	return s.tc.Submit(ctx, s.tc.Record())
}

func (s *registrationSteps) submitRecordTimes(ctx context.Context, n int) error {
	for range n {
		if err := s.tc.Submit(ctx, s.tc.Record()); err != nil {
			return err
		}
	}
	return nil
}

func fromRecord(rec citizen.Record) *testutil.CitizenBuilder {
	return testutil.NewCitizenBuilder().
		WithCitizenID(rec.CitizenID).
		WithName(rec.Name).
		WithSurname(rec.Surname).
		WithBirthDate(rec.BirthDate).
		WithOccupation(rec.Occupation).
		WithAddress(rec.Address)
}

func set(b *testutil.CitizenBuilder, field, value string) error {
	switch field {
	case citizen.FieldCitizenID:
		b.WithCitizenID(value)
	case citizen.FieldName:
		b.WithName(value)
	case citizen.FieldSurname:
		b.WithSurname(value)
	case citizen.FieldBirthDate:
		b.WithBirthDate(value)
	case citizen.FieldOccupation:
		b.WithOccupation(value)
	case citizen.FieldAddress:
		b.WithAddress(value)
	default:
		return fmt.Errorf("unknown citizen field %q", field)
	}
	return nil
}
