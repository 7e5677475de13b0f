// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command datefmt detects, reformats and performs arithmetic on date and
// datetime strings in the layouts supported by cloudeng.io/datefmt.
package main

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/datefmt"
	"cloudeng.io/errors"
)

var cmdSet *subcmd.CommandSet

type detectFlags struct {
	Locale string `subcmd:"locale,auto,'day/month ordering for ambiguous dates: auto, us or eu'"`
}

type reformatFlags struct {
	Locale string `subcmd:"locale,auto,'day/month ordering for ambiguous dates: auto, us or eu'"`
	From   string `subcmd:"from,,'pattern to parse the input with, detected when empty'"`
	To     string `subcmd:"to,iso-date,pattern to render the output with"`
}

type addFlags struct {
	Locale string `subcmd:"locale,auto,'day/month ordering for ambiguous dates: auto, us or eu'"`
	Amount int    `subcmd:"amount,1,signed amount of the unit to add"`
	Unit   string `subcmd:"unit,days,unit to add"`
}

type betweenFlags struct {
	Locale string `subcmd:"locale,auto,'day/month ordering for ambiguous dates: auto, us or eu'"`
	Unit   string `subcmd:"unit,,'unit to count, an ISO 8601 duration is printed when empty'"`
}

type nowFlags struct {
	Pattern string `subcmd:"pattern,iso-datetime-offset,pattern to render the current instant with"`
}

func init() {
	detectFlagSet := subcmd.NewFlagSet()
	detectFlagSet.MustRegisterFlagStruct(&detectFlags{}, nil, nil)
	reformatFlagSet := subcmd.NewFlagSet()
	reformatFlagSet.MustRegisterFlagStruct(&reformatFlags{}, nil, nil)
	addFlagSet := subcmd.NewFlagSet()
	addFlagSet.MustRegisterFlagStruct(&addFlags{}, nil, nil)
	betweenFlagSet := subcmd.NewFlagSet()
	betweenFlagSet.MustRegisterFlagStruct(&betweenFlags{}, nil, nil)
	nowFlagSet := subcmd.NewFlagSet()
	nowFlagSet.MustRegisterFlagStruct(&nowFlags{}, nil, nil)

	detectCmd := subcmd.NewCommand("detect", detectFlagSet, detect)
	detectCmd.Document("detect the pattern of each argument", "<date/datetime>+")

	reformatCmd := subcmd.NewCommand("reformat", reformatFlagSet, reformat)
	reformatCmd.Document("parse each argument and print it in another pattern", "<date/datetime>+")

	addCmd := subcmd.NewCommand("add", addFlagSet, add)
	addCmd.Document("add an amount of a unit to each argument", "<date/datetime>+")

	betweenCmd := subcmd.NewCommand("between", betweenFlagSet, between, subcmd.ExactlyNumArguments(2))
	betweenCmd.Document("print the span separating two dates/datetimes")

	nowCmd := subcmd.NewCommand("now", nowFlagSet, now, subcmd.WithoutArguments())
	nowCmd.Document("print the current instant")

	cmdSet = subcmd.NewCommandSet(addCmd, betweenCmd, detectCmd, nowCmd, reformatCmd)
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}

func parseLocale(val string) (datefmt.Locale, error) {
	var locale datefmt.Locale
	err := locale.Parse(val)
	return locale, err
}

func detect(_ context.Context, values any, args []string) error {
	fv := values.(*detectFlags)
	locale, err := parseLocale(fv.Locale)
	if err != nil {
		return err
	}
	errs := errors.M{}
	for _, arg := range args {
		p, err := datefmt.DetectIn(arg, locale)
		if err != nil {
			errs.Append(err)
			continue
		}
		fmt.Printf("%s: %s\n", arg, p)
	}
	return errs.Err()
}

func reformat(_ context.Context, values any, args []string) error {
	fv := values.(*reformatFlags)
	locale, err := parseLocale(fv.Locale)
	if err != nil {
		return err
	}
	var from, to datefmt.Pattern
	if len(fv.From) > 0 {
		if err := from.Parse(fv.From); err != nil {
			return err
		}
	}
	if err := to.Parse(fv.To); err != nil {
		return err
	}
	errs := errors.M{}
	for _, arg := range args {
		out, err := reformatOne(arg, from, to, locale)
		if err != nil {
			errs.Append(err)
			continue
		}
		fmt.Println(out)
	}
	return errs.Err()
}

func reformatOne(arg string, from, to datefmt.Pattern, locale datefmt.Locale) (string, error) {
	var err error
	if from == datefmt.PatternUnspecified {
		if from, err = datefmt.DetectIn(arg, locale); err != nil {
			return "", err
		}
	}
	if !from.HasTime() && !to.HasTime() {
		cd, err := datefmt.ParseDateAs(arg, from)
		if err != nil {
			return "", err
		}
		return datefmt.FormatDate(cd, to)
	}
	cdt, err := datefmt.ParseDateTimeAs(arg, from)
	if err != nil {
		return "", err
	}
	return datefmt.FormatDateTime(cdt, to)
}

func add(_ context.Context, values any, args []string) error {
	fv := values.(*addFlags)
	locale, err := parseLocale(fv.Locale)
	if err != nil {
		return err
	}
	var unit datefmt.Unit
	if err := unit.Parse(fv.Unit); err != nil {
		return err
	}
	errs := errors.M{}
	for _, arg := range args {
		pattern, err := datefmt.DetectIn(arg, locale)
		if err != nil {
			errs.Append(err)
			continue
		}
		cdt, err := datefmt.ParseDateTimeAs(arg, pattern)
		if err != nil {
			errs.Append(err)
			continue
		}
		out, err := datefmt.FormatDateTime(cdt.Add(fv.Amount, unit), pattern)
		if err != nil {
			errs.Append(err)
			continue
		}
		fmt.Println(out)
	}
	return errs.Err()
}

func between(_ context.Context, values any, args []string) error {
	fv := values.(*betweenFlags)
	locale, err := parseLocale(fv.Locale)
	if err != nil {
		return err
	}
	a, err := datefmt.ParseDateTimeIn(args[0], locale)
	if err != nil {
		return err
	}
	b, err := datefmt.ParseDateTimeIn(args[1], locale)
	if err != nil {
		return err
	}
	if len(fv.Unit) == 0 {
		fmt.Println(datefmt.DurationBetween(a, b))
		return nil
	}
	var unit datefmt.Unit
	if err := unit.Parse(fv.Unit); err != nil {
		return err
	}
	n, err := datefmt.DateTimeBetween(a, b, unit)
	if err != nil {
		return err
	}
	fmt.Printf("%d %s\n", n, unit)
	return nil
}

func now(_ context.Context, values any, _ []string) error {
	fv := values.(*nowFlags)
	var pattern datefmt.Pattern
	if err := pattern.Parse(fv.Pattern); err != nil {
		return err
	}
	out, err := datefmt.FormatDateTime(datefmt.Now(nil), pattern)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
