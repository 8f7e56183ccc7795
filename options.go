/*------------------------------------------------------------------------------
* options.go : fec options functions
*
*          Copyright (C) 2022-2025 by feng xuebin, All rights reserved.
*
* history : 2022/05/31 1.0  rewrite options.c with golang by fxb
*           2025/03/02 1.1  fec options table (fec-invert2nd, fec-vitmode)
*-----------------------------------------------------------------------------*/
package gnssfec

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

/* system options buffer -----------------------------------------------------*/
var (
	fecopt_ FecOpt = DefaultFecOpt()

	/* system options table ------------------------------------------------------*/
	SWTOPT string = "0:off,1:on"
	VITOPT string = "0:min,1:strict,2:tail"
)

var FecOpts map[string]*Opt = map[string]*Opt{
	"fec-invert2nd":   {"fec-invert2nd", 3, &fecopt_.Invert2nd, nil, nil, SWTOPT},
	"fec-vitmode":     {"fec-vitmode", 3, &fecopt_.VitMode, nil, nil, VITOPT},
	"misc-tracelevel": {"misc-tracelevel", 0, &fecopt_.TraceLevel, nil, nil, ""},
	"file-tracefile":  {"file-tracefile", 2, nil, nil, &fecopt_.TraceFile, ""}}

/* default fec options -------------------------------------------------------*/
func DefaultFecOpt() FecOpt {
	return FecOpt{Invert2nd: 0, VitMode: VITMODE_MIN}
}

/* discard comment and space characters at tail ------------------------------*/
func options_chop(buff *string) {
	if idx := strings.Index(*buff, "#"); idx >= 0 {
		*buff = (*buff)[:idx]
	}
	*buff = strings.TrimFunc(*buff, func(r rune) bool {
		return !strconv.IsGraphic(r) || r == ' '
	})
}

/* enum to string --------------------------------------------------------------
* label of enum value in comment ("0:off,1:on")
* return : label ("" if not found)
*-----------------------------------------------------------------------------*/
func Enum2Str(comment string, val int) string {
	key := fmt.Sprintf("%d:", val)
	for _, item := range strings.Split(comment, ",") {
		if strings.HasPrefix(item, key) {
			return item[len(key):]
		}
	}
	return ""
}

/* string to enum --------------------------------------------------------------
* enum value of label or number in comment ("0:off,1:on")
* return : enum value, status (true:ok)
*-----------------------------------------------------------------------------*/
func Str2Enum(str, comment string) (int, bool) {
	for _, item := range strings.Split(comment, ",") {
		q := strings.Index(item, ":")
		if q < 0 {
			continue
		}
		val, err := strconv.Atoi(item[:q])
		if err != nil {
			continue
		}
		if item[q+1:] == str || item[:q] == str {
			return val, true
		}
	}
	return 0, false
}

/* search option ---------------------------------------------------------------
* search option record
* args   : char   *name     I  option name
*          opt_t  *opts     I  options table
* return : option record (nil: not found)
*-----------------------------------------------------------------------------*/
func SearchOpt(name string, opts map[string]*Opt) *Opt {
	Trace(4, "searchopt: name=%s\n", name)

	return opts[name]
}

/* string to option value ------------------------------------------------------
* convert string to option value
* args   : opt_t  *opt      O  option
*          char   *str      I  option value string
* return : error
*-----------------------------------------------------------------------------*/
func (opt *Opt) Str2Opt(str string) error {
	var err error

	switch opt.Format {
	case 0:
		*opt.VarInt, err = strconv.Atoi(str)
	case 1:
		*opt.VarFloat, err = strconv.ParseFloat(str, 64)
	case 2:
		*opt.VarString = str
	case 3:
		val, ok := Str2Enum(str, opt.Comment)
		if !ok {
			return fmt.Errorf("%w: %s=%s (%s)", ErrInvalidOpt, opt.Name, str, opt.Comment)
		}
		*opt.VarInt = val
	default:
		return fmt.Errorf("%w: %s format %d", ErrInvalidOpt, opt.Name, opt.Format)
	}
	if err != nil {
		return fmt.Errorf("%w: %s=%s: %v", ErrInvalidOpt, opt.Name, str, err)
	}
	return nil
}

/* option value to string ----------------------------------------------------*/
func (opt *Opt) Opt2Str() string {
	switch opt.Format {
	case 0:
		return fmt.Sprintf("%d", *opt.VarInt)
	case 1:
		return fmt.Sprintf("%.15g", *opt.VarFloat)
	case 2:
		return *opt.VarString
	case 3:
		return Enum2Str(opt.Comment, *opt.VarInt)
	}
	return ""
}

/* option to string (keyword=value # comment) --------------------------------*/
func (opt *Opt) Opt2Buf() string {
	p := fmt.Sprintf("%-18s =%s", opt.Name, opt.Opt2Str())
	if opt.Comment != "" {
		if len(p) < 30 {
			p += strings.Repeat(" ", 30-len(p))
		}
		p += fmt.Sprintf(" # (%s)", opt.Comment)
	}
	return p
}

/* load options ----------------------------------------------------------------
* load options from file (keyword=value, or yaml map for .yaml/.yml files)
* args   : char   *file     I  options file
*          opt_t  *opts     IO options table
* return : error (open error only, invalid lines are traced and skipped)
*-----------------------------------------------------------------------------*/
func LoadOpts(file string, opts map[string]*Opt) error {
	Trace(4, "loadopts: file=%s\n", file)

	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return loadoptsyaml(file, opts)
	}
	fp, err := os.Open(file)
	if err != nil {
		Trace(2, "loadopts: options file open error (%s)\n", file)
		return fmt.Errorf("load options: %w", err)
	}
	defer fp.Close()

	sc := bufio.NewScanner(fp)
	for n := 1; sc.Scan(); n++ {
		buff := sc.Text()
		options_chop(&buff)
		if len(buff) == 0 {
			continue
		}
		index := strings.Index(buff, "=")
		if index < 0 {
			Trace(2, "invalid option %s (%s:%d)\n", buff, file, n)
			continue
		}
		name := strings.TrimSpace(buff[:index])
		value := strings.TrimSpace(buff[index+1:])

		opt := SearchOpt(name, opts)
		if opt == nil {
			continue
		}
		if err := opt.Str2Opt(value); err != nil {
			Trace(2, "invalid option value %s (%s:%d)\n", buff, file, n)
			continue
		}
	}
	return sc.Err()
}

/* load options from yaml map (fec-vitmode: tail) ---------------------------*/
func loadoptsyaml(file string, opts map[string]*Opt) error {
	data, err := os.ReadFile(file)
	if err != nil {
		Trace(2, "loadopts: options file open error (%s)\n", file)
		return fmt.Errorf("load options: %w", err)
	}
	var vals map[string]interface{}
	if err := yaml.Unmarshal(data, &vals); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidOpt, file, err)
	}
	for name, v := range vals {
		opt := SearchOpt(name, opts)
		if opt == nil {
			continue
		}
		value := ""
		if v != nil {
			value = fmt.Sprint(v)
		}
		if err := opt.Str2Opt(value); err != nil {
			Trace(2, "invalid option value %s=%s (%s)\n", name, value, file)
		}
	}
	return nil
}

/* save options to file --------------------------------------------------------
* save options to file, sorted by option name
* args   : char   *file     I  options file
*          char   *comment  I  header comment ("": no comment)
*          opt_t  *opts     I  options table
* return : error
*-----------------------------------------------------------------------------*/
func SaveOpts(file, comment string, opts map[string]*Opt) error {
	Trace(4, "saveopts: file=%s\n", file)

	fp, err := os.Create(file)
	if err != nil {
		Trace(2, "saveopts: options file open error (%s)\n", file)
		return fmt.Errorf("save options: %w", err)
	}
	defer fp.Close()

	w := bufio.NewWriter(fp)
	if comment != "" {
		fmt.Fprintf(w, "# %s\n\n", comment)
	}
	names := make([]string, 0, len(opts))
	for name := range opts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintln(w, opts[name].Opt2Buf())
	}
	return w.Flush()
}

/* reset system options to default -------------------------------------------*/
func ResetFecOpts() {
	fecopt_ = DefaultFecOpt()
}

/* get system options --------------------------------------------------------*/
func GetFecOpts() FecOpt {
	return fecopt_
}

/* set system options --------------------------------------------------------*/
func SetFecOpts(opt FecOpt) {
	fecopt_ = opt
}
