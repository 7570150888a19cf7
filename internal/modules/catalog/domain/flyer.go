package domain

import (
	"strconv"
	"strings"
	"time"
)

// Flyer holds the fields recognised on an event flyer. Lines of the form
// "Key: value" fill the named fields; everything else is description.
type Flyer struct {
	Name         string
	Date         string
	Time         string
	Address      string
	Category     string
	Organizer    string
	MaxAttendees int
	Price        float64
	Description  string
}

var flyerKeys = map[string]string{
	"name":      "name",
	"title":     "name",
	"event":     "name",
	"date":      "date",
	"when":      "date",
	"time":      "time",
	"where":     "address",
	"location":  "address",
	"address":   "address",
	"category":  "category",
	"organizer": "organizer",
	"host":      "organizer",
	"capacity":  "capacity",
	"spots":     "capacity",
	"price":     "price",
	"cost":      "price",
}

func ParseFlyer(lines []string) Flyer {
	f := Flyer{}
	var desc []string
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		field := ""
		if ok {
			field = flyerKeys[strings.ToLower(strings.TrimSpace(key))]
		}
		value = strings.TrimSpace(value)
		switch field {
		case "name":
			f.Name = value
		case "date":
			f.Date = value
		case "time":
			f.Time = value
		case "address":
			f.Address = value
		case "category":
			f.Category = value
		case "organizer":
			f.Organizer = value
		case "capacity":
			if n, err := strconv.Atoi(strings.Fields(value + " 0")[0]); err == nil && n > 0 {
				f.MaxAttendees = n
			}
		case "price":
			p := strings.TrimPrefix(strings.ToLower(value), "$")
			if p == "free" {
				f.Price = 0
			} else if v, err := strconv.ParseFloat(p, 64); err == nil && v > 0 {
				f.Price = v
			}
		default:
			if f.Name == "" && !ok {
				f.Name = line
				continue
			}
			desc = append(desc, line)
		}
	}
	f.Description = strings.Join(desc, " ")
	return f
}

var (
	dateLayouts = []string{"2006-01-02", "January 2, 2006", "Jan 2, 2006", "01/02/2006"}
	timeLayouts = []string{"3:04 PM", "3:04PM", "3 PM", "15:04"}
)

// StartsAt combines the flyer's date and time in loc. A missing time means
// midnight; an unparseable date is reported as ok=false.
func (f Flyer) StartsAt(loc *time.Location) (time.Time, bool) {
	var day time.Time
	found := false
	for _, layout := range dateLayouts {
		if d, err := time.ParseInLocation(layout, f.Date, loc); err == nil {
			day, found = d, true
			break
		}
	}
	if !found {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, strings.ToUpper(f.Time)); err == nil {
			return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, loc), true
		}
	}
	return day, true
}
