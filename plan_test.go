package wealth

import "testing"

func TestInferPlan(t *testing.T) {
	testCases := []struct {
		name    string
		headers []string
		want    ColumnMapping
	}{
		{
			name:    "plain english headers",
			headers: []string{"Date", "Amount", "Currency", "Description"},
			want:    ColumnMapping{Date: "Date", Amount: "Amount", Currency: "Currency", Description: "Description"},
		},
		{
			name:    "german bank export",
			headers: []string{"Buchungsdatum", "Betrag", "Währung", "Text"},
			want:    ColumnMapping{Date: "Buchungsdatum", Amount: "Betrag", Currency: "Währung", Description: "Text"},
		},
		{
			name:    "keyword containment, not equality",
			headers: []string{"Booking Date", "Transaction Amount", "Merchant Name"},
			want:    ColumnMapping{Date: "Booking Date", Amount: "Transaction Amount", Description: "Merchant Name"},
		},
		{
			name:    "nothing recognized",
			headers: []string{"Foo", "Bar"},
			want:    ColumnMapping{},
		},
		{
			name:    "first matching header wins",
			headers: []string{"Value Date", "Posting Date", "Amount"},
			want:    ColumnMapping{Date: "Value Date", Amount: "Value Date"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			plan := InferPlan(tc.headers, nil, "test")
			if plan.ColumnMapping != tc.want {
				t.Errorf("InferPlan(%v).ColumnMapping = %+v, want %+v", tc.headers, plan.ColumnMapping, tc.want)
			}
		})
	}
}

func TestInferPlanDefaults(t *testing.T) {
	plan := InferPlan([]string{"Date", "Amount"}, nil, "revolut")
	if plan.AccountID != "acc_bank" {
		t.Errorf("AccountID = %q, want acc_bank", plan.AccountID)
	}
	if got := plan.DuplicateDetection.Hash; len(got) != 3 || got[0] != "date" || got[1] != "amount" || got[2] != "description" {
		t.Errorf("DuplicateDetection.Hash = %v, want [date amount description]", got)
	}
	if plan.Normalization.DateFormat != "auto" {
		t.Errorf("Normalization.DateFormat = %q, want auto", plan.Normalization.DateFormat)
	}
}
