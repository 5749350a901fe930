package summarize

import (
	"context"
	"strings"
)

// Demo is the no-network backend. It returns one of three canned summaries
// picked by a case-insensitive substring of the uploaded filename, ignoring
// the document text entirely.
type Demo struct{}

func NewDemo() *Demo {
	return &Demo{}
}

const demoRentalSummary = `Demo Summary: This is a rental agreement between a landlord and tenant.

It sets out who is renting the property, how much rent is due and when, and how long the lease runs. Look for the deposit amount, the notice period for moving out, and any rules about pets, guests, or changes to the property.

As with any lease, pay special attention to clauses about late fees, automatic renewal, and what happens if either side wants to end the agreement early.`

const demoNDASummary = `Demo Summary: This is a non-disclosure agreement that protects shared confidential information.

One or both parties agree not to reveal certain information they learn from each other. The key questions: what exactly counts as confidential, how long the obligation lasts, and what happens if someone breaks the promise.

Check whether the agreement is one-way or mutual, and whether it survives after the business relationship ends.`

const demoEmploymentSummary = `Demo Summary: This outlines terms of employment between a company and an employee.

It usually covers the role, salary, benefits, working hours, and grounds for termination. Watch for non-compete and non-solicitation clauses, intellectual property assignment, and any probation period.

If the contract mentions binding arbitration, disputes with the employer may have to be settled outside of court.`

const demoFallbackSummary = `Demo Summary: Unable to identify document type. This is a general contract.

Read it for the parties involved, what each side promises, payment terms, how the agreement can end, and what happens when something goes wrong. When in doubt, ask a qualified professional before signing.`

// Summarize is a pure function of the filename: identical input always yields
// identical output.
func (d *Demo) Summarize(_ context.Context, req Request) (*Result, error) {
	name := strings.ToLower(req.Filename)

	var summary string
	switch {
	case strings.Contains(name, "rental"):
		summary = demoRentalSummary
	case strings.Contains(name, "nda"):
		summary = demoNDASummary
	case strings.Contains(name, "employment"):
		summary = demoEmploymentSummary
	default:
		summary = demoFallbackSummary
	}

	return &Result{Summary: summary}, nil
}
