package stockcalc

// KRW is a helper for test to create won money from const
func KRW(v float64) Money { return M(v, "KRW") }

// USD is a helper for test to create dollar money from const
func USD(v float64) Money { return M(v, "USD") }
