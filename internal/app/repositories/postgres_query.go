package repositories

import (
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/collegehub/internal/app/models"
)

// courseCountsSubquery yields the total number of courses per college,
// independent of any course predicate
const courseCountsSubquery = "(SELECT college_id, COUNT(*) AS number_of_courses FROM courses GROUP BY college_id) cc ON cc.college_id = c.id"

// searchWhere applies the filter predicates to a query over colleges c joined with courses co
func searchWhere(b squirrel.SelectBuilder, f models.CollegeFilter) squirrel.SelectBuilder {
	if f.Country != "" {
		b = b.Where(squirrel.Eq{"c.country": f.Country})
	}
	if f.CollegeName != "" {
		b = b.Where(squirrel.ILike{"c.name": containsPattern(f.CollegeName)})
	}
	if f.Program != "" {
		b = b.Where(squirrel.Eq{"co.program": f.Program})
	}
	if f.Type != "" {
		b = b.Where(squirrel.Eq{"co.course_type": f.Type})
	}
	if f.CourseName != "" {
		b = b.Where(squirrel.ILike{"co.course_name": containsPattern(f.CourseName)})
	}
	return b
}

// searchPageQuery selects one page of search rows in stable order
func searchPageQuery(f models.CollegeFilter, offset, limit int64) squirrel.SelectBuilder {
	b := squirrel.Select(
		"c.id", "c.name", "c.address", "c.country", "cc.number_of_courses",
		"co.id", "co.course_name", "co.program", "co.course_type",
	).
		From("colleges c").
		Join("courses co ON co.college_id = c.id").
		Join(courseCountsSubquery)

	return searchWhere(b, f).
		OrderBy("cc.number_of_courses DESC", "c.id ASC", "co.id ASC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)
}

// searchCountQuery counts every row the search would return
func searchCountQuery(f models.CollegeFilter) squirrel.SelectBuilder {
	b := squirrel.Select("COUNT(*)").
		From("colleges c").
		Join("courses co ON co.college_id = c.id")

	return searchWhere(b, f).PlaceholderFormat(squirrel.Dollar)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s literally anywhere
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
