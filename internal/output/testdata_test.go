package output

import "github.com/bgricker/cukereport/internal/report"

func sampleReport() report.Report {
	return report.Report{
		Source: "cucumber.json",
		Features: []report.Feature{
			{
				Name:              "Checkout",
				URI:               "features/checkout.feature",
				Keyword:           "Feature",
				Description:       "Paying for a **cart**.",
				Tags:              []string{"@smoke"},
				TagsDisplay:       "@smoke",
				Status:            report.StatusFailed,
				ConvertedDuration: "8s",
				ScenarioSummary:   report.ScenarioCounts{All: 2, Passed: 1, Failed: 1},
				StepSummary:       report.StepCounts{All: 4, Passed: 2, Skipped: 1, Failed: 1},
				Elements: []report.Element{
					{
						Keyword: "Scenario",
						Name:    "Pay by voucher",
						Type:    "scenario",
						Status:  report.StatusFailed,
						Steps: []report.Step{
							{Keyword: "Given ", Name: "a voucher", Status: report.StatusPassed, ConvertedDuration: "1s"},
							{Keyword: "Then ", Name: "it is rejected", Status: report.StatusFailed, ErrorMessage: "expected rejection\nat checkout.go:12"},
							{Keyword: "And ", Name: "no receipt", Status: report.StatusSkipped},
						},
					},
					{
						Keyword:           "Scenario",
						Name:              "Pay by card",
						Type:              "scenario",
						Status:            report.StatusPassed,
						Steps:             []report.Step{{Keyword: "When ", Name: "I pay", Status: report.StatusPassed, ConvertedDuration: "2s"}},
						ImageNames:        []string{"pay_by_card-7-1.png"},
						PlainTextMetadata: []string{"hello"},
						Logs:              []string{"line1", "line2"},
					},
				},
			},
			{
				Name:              "Search",
				URI:               "features/search.feature",
				Keyword:           "Feature",
				Status:            report.StatusPassed,
				ConvertedDuration: "1s",
				ScenarioSummary:   report.ScenarioCounts{All: 1, Passed: 1},
				StepSummary:       report.StepCounts{All: 1, Passed: 1},
			},
		},
		Tags: []report.TagSummary{
			{Name: "@smoke", Scenarios: report.ScenarioCounts{All: 2, Passed: 1, Failed: 1}, ConvertedDuration: "7s", Status: report.StatusFailed},
		},
		Summary: report.Summary{
			Features:          report.ScenarioCounts{All: 2, Passed: 1, Failed: 1},
			Scenarios:         report.ScenarioCounts{All: 3, Passed: 2, Failed: 1},
			Steps:             report.StepCounts{All: 5, Passed: 3, Skipped: 1, Failed: 1},
			DurationMS:        9000,
			ConvertedDuration: "9s",
			Status:            report.StatusFailed,
		},
		Images:   []report.ImageWrite{{Name: "pay_by_card-7-1.png", Data: []byte{1, 2}}},
		Warnings: []report.Warning{{Feature: "Checkout", Element: "Pay by card", Message: "step \"x\": decode text: bad"}},
	}
}
