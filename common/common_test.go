package common

import (
	"errors"
	"strings"
	"testing"
)

func TestStringToBigInt(t *testing.T) {
	n, err := StringToBigInt("1000000000000000000")
	if err != nil {
		t.Fatalf("expected a valid integer, got: %s", err)
	}
	if n.String() != "1000000000000000000" {
		t.Errorf("expected 1000000000000000000, got %s", n.String())
	}

	n, err = StringToBigInt("-5")
	if err != nil {
		t.Fatalf("expected negative integers to parse, got: %s", err)
	}
	if n.Sign() >= 0 {
		t.Errorf("expected a negative number, got %s", n.String())
	}

	_, err = StringToBigInt("1.5")
	if err == nil {
		t.Fatalf("expected a decimal point to be rejected")
	}
	if !strings.Contains(err.Error(), "not a valid base 10 integer") {
		t.Errorf("unexpected error: %s", err)
	}

	_, err = StringToBigInt("0x10")
	if err == nil {
		t.Fatalf("expected hex input to be rejected")
	}
}

func TestRunParallelCountsFailures(t *testing.T) {
	var ran [3]bool
	err, failed := RunParallel(
		func() error { ran[0] = true; return nil },
		func() error { ran[1] = true; return errors.New("node down") },
		func() error { ran[2] = true; return nil },
	)
	if failed != 1 {
		t.Errorf("expected 1 failure, got %d", failed)
	}
	if err == nil || !strings.Contains(err.Error(), "node down") {
		t.Errorf("expected the joined error, got: %v", err)
	}
	for i, r := range ran {
		if !r {
			t.Errorf("expected function %d to run", i)
		}
	}

	err, failed = RunParallel()
	if err != nil || failed != 0 {
		t.Errorf("expected no work to mean no failures, got %v, %d", err, failed)
	}
}

func TestBuiltinABIsParse(t *testing.T) {
	if _, found := GetERC20ABI().Methods["balanceOf"]; !found {
		t.Errorf("expected balanceOf on the erc20 abi")
	}
	if _, found := GetRegistryABI().Methods["getAddressForString"]; !found {
		t.Errorf("expected getAddressForString on the registry abi")
	}
	if _, found := GetExchangeABI().Methods["getBuyTokenAmount"]; !found {
		t.Errorf("expected getBuyTokenAmount on the exchange abi")
	}
}
