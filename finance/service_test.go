package finance

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-finance-calculator/domain"
)

func TestService_Convert(t *testing.T) {
	service := NewService(NewEngine())

	type args struct {
		amount domain.Amount
		from   domain.Currency
		to     domain.Currency
	}
	tests := []struct {
		name    string
		args    args
		want    domain.Exchanged
		wantErr error
	}{
		{
			"usd -> rub",
			args{10.0, domain.USD, domain.RUB},
			domain.Exchanged{Rate: 90.0, Amount: 900.0},
			nil,
		},
		{
			"eur -> rub",
			args{10.0, domain.EUR, domain.RUB},
			domain.Exchanged{Rate: 98.5, Amount: 985.0},
			nil,
		},
		{
			"rub -> rub",
			args{10.0, domain.RUB, domain.RUB},
			domain.Exchanged{Rate: 1, Amount: 10.0},
			nil,
		},
		{
			"gbp -> rub",
			args{10.0, "GBP", domain.RUB},
			domain.Exchanged{},
			ErrInvalidCurrency,
		},
		{
			"usd -> rub negative",
			args{-10.0, domain.USD, domain.RUB},
			domain.Exchanged{},
			ErrInvalidAmount,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.Convert(context.Background(), tt.args.amount, tt.args.from, tt.args.to)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			if err != nil {
				t.Errorf("Convert() error = %v", err)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Convert() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestService_LoanPaymentAndDeposit(t *testing.T) {
	service := NewService(NewEngine())
	ctx := context.Background()

	loan, err := service.LoanPayment(ctx, domain.LoanTerms{Principal: 100000, Months: 12, AnnualRatePercent: 10})
	assert.NoError(t, err)
	assert.Equal(t, "8791.59", loan.MonthlyPayment.String())

	deposit, err := service.Deposit(ctx, domain.DepositTerms{Principal: 100000, Months: 12, AnnualRatePercent: 8, Mode: domain.Simple})
	assert.NoError(t, err)
	assert.Equal(t, domain.Amount(108000), deposit.TotalAmount)

	_, err = service.Deposit(ctx, domain.DepositTerms{Principal: 100000, Months: 12, AnnualRatePercent: 8, Mode: 9})
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestService_Rates(t *testing.T) {
	service := NewService(NewEngine())

	assert.Len(t, service.Rates(context.Background()), 6)
}
