package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bijumonchettipparambil/isodatetime"
)

func main() {
	shape := flag.String("shape", "all", "date|datetime|timestamp|utc-date|utc-datetime|utc-timestamp|all")
	flag.Parse()

	switch *shape {
	case "date":
		fmt.Println(isodatetime.DateNow())
	case "datetime":
		fmt.Println(isodatetime.DateTimeNow())
	case "timestamp":
		fmt.Println(isodatetime.DateTimestampNow())
	case "utc-date":
		fmt.Println(isodatetime.UTCDateNow())
	case "utc-datetime":
		fmt.Println(isodatetime.UTCDateTimeNow())
	case "utc-timestamp":
		fmt.Println(isodatetime.UTCDateTimestampNow())
	case "all":
		fmt.Printf("date:           %s\n", isodatetime.DateNow())
		fmt.Printf("datetime:       %s\n", isodatetime.DateTimeNow())
		fmt.Printf("timestamp:      %s\n", isodatetime.DateTimestampNow())
		fmt.Printf("utc-date:       %s\n", isodatetime.UTCDateNow())
		fmt.Printf("utc-datetime:   %s\n", isodatetime.UTCDateTimeNow())
		fmt.Printf("utc-timestamp:  %s\n", isodatetime.UTCDateTimestampNow())
	default:
		flag.Usage()
		os.Exit(2)
	}
}
