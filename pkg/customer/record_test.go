package customer

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

var testDID = "0x" + strings.Repeat("ab", 32)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func fullPayload() Payload {
	return Payload{
		Name:           strPtr("John Doe"),
		Country:        strPtr("Gb"),
		Passport:       strPtr("12345"),
		Valid:          boolPtr(true),
		Jurisdiction:   strPtr("Us"),
		LedgerIdentity: strPtr(testDID),
	}
}

func TestFromPayload_Defaults(t *testing.T) {
	rec, err := FromPayload(Payload{
		Name:     strPtr("John Doe"),
		Country:  strPtr("Gb"),
		Passport: strPtr("12345"),
	})
	if err != nil {
		t.Fatalf("FromPayload() failed: %v", err)
	}
	if rec.Valid {
		t.Fatal("expected Valid to default to false")
	}
	if rec.Jurisdiction != nil || rec.LedgerIdentity != nil {
		t.Fatalf("expected unset optionals, got %+v", rec)
	}
	if rec.Country == nil || *rec.Country != "Gb" {
		t.Fatalf("expected country Gb, got %v", rec.Country)
	}

	body, err := json.Marshal(rec.Serialize())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if v, ok := got["valid"]; !ok || v != false {
		t.Fatalf("expected valid:false in %s", body)
	}
	if v, ok := got["jurisdiction"]; !ok || v != nil {
		t.Fatalf("expected jurisdiction:null in %s", body)
	}
}

func TestFromPayload_InvalidCountry(t *testing.T) {
	for _, field := range []string{"country", "jurisdiction"} {
		p := fullPayload()
		if field == "country" {
			p.Country = strPtr("ZZ")
		} else {
			p.Jurisdiction = strPtr("ZZ")
		}

		rec, err := FromPayload(p)
		if rec != nil {
			t.Fatalf("%s: expected no record on failure, got %+v", field, rec)
		}
		var codeErr *InvalidCountryCodeError
		if !errors.As(err, &codeErr) {
			t.Fatalf("%s: expected InvalidCountryCodeError, got %v", field, err)
		}
		if codeErr.Code != "ZZ" {
			t.Fatalf("%s: expected code ZZ, got %q", field, codeErr.Code)
		}
		if !IsValidation(err) {
			t.Fatalf("%s: expected validation error", field)
		}
	}
}

func TestParseCountryCode_CaseInsensitive(t *testing.T) {
	for _, raw := range []string{"gb", "GB", "Gb", "gB"} {
		code, err := ParseCountryCode(raw)
		if err != nil {
			t.Fatalf("ParseCountryCode(%q) failed: %v", raw, err)
		}
		if code != "Gb" {
			t.Fatalf("ParseCountryCode(%q) = %q, want Gb", raw, code)
		}
		if code.ISO() != "GB" {
			t.Fatalf("ISO() = %q, want GB", code.ISO())
		}
	}
	for _, raw := range []string{"G", "GBR", "XX", "1A"} {
		if _, err := ParseCountryCode(raw); err == nil {
			t.Fatalf("ParseCountryCode(%q) expected error", raw)
		}
	}
}

func TestFromPayload_InvalidLedgerIdentity(t *testing.T) {
	bad := []string{
		strings.Repeat("ab", 32),
		"0x" + strings.Repeat("ab", 31),
		"0x" + strings.Repeat("ab", 33),
		"0x" + strings.Repeat("zz", 32),
		"0X" + strings.Repeat("ab", 32),
	}
	for _, v := range bad {
		p := fullPayload()
		p.LedgerIdentity = strPtr(v)

		_, err := FromPayload(p)
		var idErr *InvalidLedgerIdentityError
		if !errors.As(err, &idErr) {
			t.Fatalf("%q: expected InvalidLedgerIdentityError, got %v", v, err)
		}
		if idErr.Value != v {
			t.Fatalf("expected offending value %q, got %q", v, idErr.Value)
		}
	}
}

func TestFromPayload_EmptyStringsAreUnset(t *testing.T) {
	p := fullPayload()
	p.Country = strPtr("")
	p.Jurisdiction = strPtr("")
	p.LedgerIdentity = strPtr("")

	rec, err := FromPayload(p)
	if err != nil {
		t.Fatalf("FromPayload() failed: %v", err)
	}
	if rec.Country != nil || rec.Jurisdiction != nil || rec.LedgerIdentity != nil {
		t.Fatalf("expected empty strings to normalize to unset, got %+v", rec)
	}
}

func TestSerialize_RoundTrip(t *testing.T) {
	payloads := []Payload{
		fullPayload(),
		{Name: strPtr("Jane"), Passport: strPtr("P-1"), Valid: boolPtr(false)},
		{Name: strPtr(""), Passport: strPtr(""), Valid: boolPtr(true), LedgerIdentity: strPtr(testDID)},
	}
	for i, p := range payloads {
		rec, err := FromPayload(p)
		if err != nil {
			t.Fatalf("case %d: FromPayload() failed: %v", i, err)
		}
		if got := rec.Serialize(); !reflect.DeepEqual(got, p) {
			t.Fatalf("case %d: Serialize() = %+v, want %+v", i, got, p)
		}
		again, err := FromPayload(rec.Serialize())
		if err != nil {
			t.Fatalf("case %d: second FromPayload() failed: %v", i, err)
		}
		if !reflect.DeepEqual(again, rec) {
			t.Fatalf("case %d: round trip mismatch: %+v vs %+v", i, again, rec)
		}
	}
}

func TestSerialize_NormalizesIdentityCase(t *testing.T) {
	upper := "0x" + strings.Repeat("AB", 32)
	rec, err := FromPayload(Payload{LedgerIdentity: strPtr(upper)})
	if err != nil {
		t.Fatalf("FromPayload() failed: %v", err)
	}
	if got := *rec.Serialize().LedgerIdentity; got != testDID {
		t.Fatalf("expected lower-case identity %q, got %q", testDID, got)
	}
}

func TestPatch_EmptyPayloadIsNoop(t *testing.T) {
	rec, err := FromPayload(fullPayload())
	if err != nil {
		t.Fatalf("FromPayload() failed: %v", err)
	}
	patched, err := rec.Patch(Payload{})
	if err != nil {
		t.Fatalf("Patch() failed: %v", err)
	}
	if !reflect.DeepEqual(patched, rec) {
		t.Fatalf("expected no-op patch, got %+v", patched)
	}
}

func TestPatch_ChangesOnlyPresentField(t *testing.T) {
	base, err := FromPayload(fullPayload())
	if err != nil {
		t.Fatalf("FromPayload() failed: %v", err)
	}

	patched, err := base.Patch(Payload{Passport: strPtr("99999")})
	if err != nil {
		t.Fatalf("Patch() failed: %v", err)
	}
	want := base.Clone()
	want.Passport = "99999"
	if !reflect.DeepEqual(patched, want) {
		t.Fatalf("Patch() = %+v, want %+v", patched, want)
	}
	if base.Passport != "12345" {
		t.Fatalf("Patch() mutated the receiver: %+v", base)
	}
}

func TestPatch_EmptyCountryClears(t *testing.T) {
	base, err := FromPayload(fullPayload())
	if err != nil {
		t.Fatalf("FromPayload() failed: %v", err)
	}
	patched, err := base.Patch(Payload{Country: strPtr(""), Jurisdiction: strPtr("")})
	if err != nil {
		t.Fatalf("Patch() failed: %v", err)
	}
	if patched.Country != nil || patched.Jurisdiction != nil {
		t.Fatalf("expected cleared countries, got %+v", patched)
	}
	if patched.LedgerIdentity == nil || patched.Name != "John Doe" {
		t.Fatalf("expected other fields untouched, got %+v", patched)
	}
}

func TestPatch_FailureLeavesRecordUntouched(t *testing.T) {
	base, err := FromPayload(fullPayload())
	if err != nil {
		t.Fatalf("FromPayload() failed: %v", err)
	}
	before := base.Clone()

	_, err = base.Patch(Payload{Name: strPtr("Other"), Country: strPtr("ZZ")})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !reflect.DeepEqual(base, before) {
		t.Fatalf("failed patch mutated record: %+v", base)
	}
}

func TestRecord_EligibleAndJurisdiction(t *testing.T) {
	rec, err := FromPayload(fullPayload())
	if err != nil {
		t.Fatalf("FromPayload() failed: %v", err)
	}
	if !rec.Eligible() {
		t.Fatal("expected valid record with identity to be eligible")
	}
	if j, ok := rec.ClaimJurisdiction(); !ok || j != "Us" {
		t.Fatalf("expected jurisdiction Us, got %q", j)
	}

	rec.Jurisdiction = nil
	if j, ok := rec.ClaimJurisdiction(); !ok || j != "Gb" {
		t.Fatalf("expected fallback to country Gb, got %q", j)
	}

	rec.Country = nil
	if _, ok := rec.ClaimJurisdiction(); ok {
		t.Fatal("expected no jurisdiction")
	}

	rec.Valid = false
	if rec.Eligible() {
		t.Fatal("expected invalid record to be ineligible")
	}
}
