package apperrors

import "errors"

// ErrNotFound indicates that the requested account could not be found.
var ErrNotFound = errors.New("account not found")

// ErrDuplicate indicates an attempt to register an account number that already exists.
var ErrDuplicate = errors.New("account already exists")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrAuthenticationFailed indicates a name/password/account-number combination
// that does not match any account.
var ErrAuthenticationFailed = errors.New("invalid login credentials")

// ErrTransactionsDisabled indicates the account's transaction flag is off.
var ErrTransactionsDisabled = errors.New("transactions are disabled for this account")

// ErrLoanDisabled indicates the account's own loan flag is off.
var ErrLoanDisabled = errors.New("loan feature is disabled for this account")

// ErrLoanDenied indicates the loan was refused: either both loan slots are
// taken or the bank-wide loan gate is off.
var ErrLoanDenied = errors.New("loan request denied")

// ErrInsufficientBalance indicates the amount exceeds the available balance.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrBankBankrupt is the historical status returned when an overdraw is
// attempted against a balance of exactly zero. Same class of failure as
// ErrInsufficientBalance, distinct stable message.
var ErrBankBankrupt = errors.New("sorry, the bank will be bankrupt")

// ErrRepaymentExceedsLoan indicates a repayment larger than the outstanding
// loan amount. Repayments are all-or-nothing, never partial.
var ErrRepaymentExceedsLoan = errors.New("repayment amount exceeds the loan amount")
