package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stakeledger/stakeledger/internal/model"
)

// Data is a complete set of records to start a store from.
type Data struct {
	Stakeholders []model.Stakeholder
	Projects     []model.Project
	Reports      []model.Report
	Transactions []model.Transaction
}

// Defaults returns the sample workspace the dashboard ships with.
// The ledger starts empty.
func Defaults() Data {
	return Data{
		Stakeholders: defaultStakeholders(),
		Projects:     defaultProjects(),
		Reports:      defaultReports(),
	}
}

func defaultStakeholders() []model.Stakeholder {
	pct := decimal.NewFromInt
	return []model.Stakeholder{
		{ID: "STK-1001", Name: "Ali Khan", Email: "ali.khan@example.com", Role: "Developer", Share: pct(25), Responsibilities: "Frontend Development"},
		{ID: "STK-1002", Name: "Sara Ahmed", Email: "sara.ahmed@example.com", Role: "Designer", Share: pct(20), Responsibilities: "UI/UX Design"},
		{ID: "STK-1003", Name: "Usman Raza", Email: "usman.raza@example.com", Role: "Backend Developer", Share: pct(30), Responsibilities: "API Development"},
		{ID: "STK-1004", Name: "Fatima Noor", Email: "fatima.noor@example.com", Role: "Product Manager", Share: pct(15), Responsibilities: "Project Coordination"},
		{ID: "STK-1005", Name: "Ahmed Bilal", Email: "ahmed.bilal@example.com", Role: "QA Engineer", Share: pct(10), Responsibilities: "Quality Assurance"},
		{ID: "STK-1006", Name: "Hina Zafar", Email: "hina.zafar@example.com", Role: "DevOps", Share: pct(15), Responsibilities: "Infrastructure Management"},
		{ID: "STK-1007", Name: "Zain Malik", Email: "zain.malik@example.com", Role: "Marketing", Share: pct(10), Responsibilities: "Digital Marketing"},
	}
}

func defaultProjects() []model.Project {
	return []model.Project{
		{ID: "PRJ-0001", Name: "Website Redesign", Description: "Complete overhaul of company website", Value: decimal.NewFromInt(15000), Completion: 75},
		{ID: "PRJ-0002", Name: "Mobile App Development", Description: "iOS and Android app for customer portal", Value: decimal.NewFromInt(35000), Completion: 30},
		{ID: "PRJ-0003", Name: "CRM Implementation", Description: "Salesforce integration for sales team", Value: decimal.NewFromInt(25000), Completion: 90},
	}
}

func defaultReports() []model.Report {
	day := func(d int) time.Time { return time.Date(2025, 4, d, 0, 0, 0, 0, time.UTC) }
	return []model.Report{
		{ID: "R001", Title: "Sales Q1 Report", Category: "Sales", Status: model.StatusSuccess, Date: day(1)},
		{ID: "R002", Title: "System Downtime", Category: "IT", Status: model.StatusError, Date: day(5)},
		{ID: "R003", Title: "Customer Feedback", Category: "Support", Status: model.StatusWarning, Date: day(10)},
		{ID: "R004", Title: "Marketing Campaign", Category: "Marketing", Status: model.StatusSuccess, Date: day(12)},
		{ID: "R005", Title: "Security Audit", Category: "IT", Status: model.StatusWarning, Date: day(15)},
		{ID: "R006", Title: "Annual Review", Category: "HR", Status: model.StatusSuccess, Date: day(20)},
		{ID: "R007", Title: "Bug Report", Category: "Development", Status: model.StatusError, Date: day(22)},
	}
}
