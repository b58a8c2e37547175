package daxie_test

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
	"github.com/govalues/money"

	"github.com/govalues/daxie"
)

// In this example, an invoice total kept in fens is printed in both the
// grouped and the capitalized form, as required on Chinese invoices.
func Example_invoiceTotal() {
	totalFen := int64(1234567)

	grouped := daxie.MinorToMajor(totalFen)
	numeral, err := daxie.RenderMinor(totalFen)
	if err != nil {
		panic(err)
	}

	fmt.Printf("小写: ¥%v\n", grouped)
	fmt.Printf("大写: %v\n", numeral)
	// Output:
	// 小写: ¥12,345.67
	// 大写: 壹万贰仟叁佰肆拾伍元陆角柒分
}

// In this example, amounts typed by users are validated before rendering.
func Example_userInput() {
	inputs := []string{"￥１，００１．０５", "$1,234.5", "0.00", "12abc", "1000000000000"}
	for _, in := range inputs {
		s, err := daxie.Render(in)
		switch {
		case errors.Is(err, daxie.ErrZeroAmount):
			fmt.Printf("%q: zero amount\n", in)
		case errors.Is(err, daxie.ErrUnsupportedMagnitude):
			fmt.Printf("%q: too large\n", in)
		case err != nil:
			fmt.Printf("%q: invalid\n", in)
		default:
			fmt.Printf("%q: %v\n", in, s)
		}
	}
	// Output:
	// "￥１，００１．０５": 壹仟零壹元零伍分
	// "$1,234.5": 壹仟贰佰叁拾肆元伍角
	// "0.00": zero amount
	// "12abc": invalid
	// "1000000000000": too large
}

func ExampleMinorToMajor() {
	fmt.Println(daxie.MinorToMajor(5))
	fmt.Println(daxie.MinorToMajor(100))
	fmt.Println(daxie.MinorToMajor(-123456789))
	// Output:
	// 0.05
	// 1.00
	// -1,234,567.89
}

func ExampleMajorToMinor() {
	fmt.Println(daxie.MajorToMinor("1.00"))
	fmt.Println(daxie.MajorToMinor("$1,234.5"))
	fmt.Println(daxie.MajorToMinor("1.239"))
	// Output:
	// 100 <nil>
	// 123450 <nil>
	// 123 <nil>
}

func ExampleFormatGrouped() {
	fmt.Println(daxie.FormatGrouped("1234567.89"))
	fmt.Println(daxie.FormatGrouped("1,234,567.89"))
	// Output:
	// 1,234,567.89
	// 1,234,567.89
}

func ExampleNormalize() {
	a, err := daxie.Normalize("¥1,001.5")
	if err != nil {
		panic(err)
	}
	fmt.Println(a, a.Integer(), a.Fraction(), a.MinorUnits())
	// Output:
	// 1001.50 1001 50 100150
}

func ExampleRenderNumeral() {
	for _, s := range []string{"1.00", "100.00", "1001.05", "100000000.00", "0.05"} {
		a := daxie.MustNormalize(s)
		fmt.Println(daxie.RenderNumeral(a))
	}
	// Output:
	// 壹元整 <nil>
	// 壹佰元整 <nil>
	// 壹仟零壹元零伍分 <nil>
	// 壹亿元整 <nil>
	// 伍分 <nil>
}

func ExampleNewCanonicalFromDecimal() {
	d := decimal.MustParse("88.888")
	a, err := daxie.NewCanonicalFromDecimal(d)
	if err != nil {
		panic(err)
	}
	fmt.Println(a)
	// Output:
	// 88.88
}

func ExampleNewCanonicalFromAmount() {
	m := money.MustParseAmount("CNY", "10000.1")
	a, err := daxie.NewCanonicalFromAmount(m)
	if err != nil {
		panic(err)
	}
	fmt.Println(daxie.MustRenderNumeral(a))
	// Output:
	// 壹万元壹角
}
