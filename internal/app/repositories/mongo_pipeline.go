package repositories

import (
	"regexp"

	"github.com/yigit/collegehub/internal/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// collegeDetailPipeline matches one college and joins its courses and
// scholarships, leaving out their html bodies. Joined records reference the
// college by the hex form of its id.
func collegeDetailPipeline(id primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
		joinWithoutHTML(models.CollectionCourses, id.Hex(), "courseDetails"),
		joinWithoutHTML(models.CollectionScholarships, id.Hex(), "scholarshipDetails"),
	}
}

func joinWithoutHTML(from, collegeID, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: from},
		{Key: "pipeline", Value: bson.A{
			bson.D{{Key: "$match", Value: bson.D{{Key: "collegeId", Value: collegeID}}}},
			bson.D{{Key: "$project", Value: bson.D{{Key: "html", Value: 0}}}},
			bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		}},
		{Key: "as", Value: as},
	}}}
}

// collegeSearchPipeline builds the search over colleges joined with their
// courses. College predicates run before the join, course predicates after
// the unwind, and the facet returns one sorted page plus the total row count.
func collegeSearchPipeline(f models.CollegeFilter, offset, limit int64) mongo.Pipeline {
	var pipeline mongo.Pipeline

	if match := collegeMatch(f); len(match) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}

	pipeline = append(pipeline,
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "idString", Value: bson.D{{Key: "$toString", Value: "$_id"}}},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: models.CollectionCourses},
			{Key: "let", Value: bson.D{{Key: "collegeId", Value: "$idString"}}},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{{Key: "$expr", Value: bson.D{
					{Key: "$eq", Value: bson.A{"$collegeId", "$$collegeId"}},
				}}}}},
				bson.D{{Key: "$project", Value: bson.D{
					{Key: "courseName", Value: 1},
					{Key: "program", Value: 1},
					{Key: "courseType", Value: 1},
				}}},
			}},
			{Key: "as", Value: "courseDetails"},
		}}},
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "numberOfCourses", Value: bson.D{{Key: "$size", Value: "$courseDetails"}}},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$courseDetails"},
			{Key: "preserveNullAndEmptyArrays", Value: false},
		}}},
	)

	if match := courseMatch(f); len(match) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}

	pipeline = append(pipeline,
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 1},
			{Key: "name", Value: 1},
			{Key: "address", Value: 1},
			{Key: "country", Value: 1},
			{Key: "numberOfCourses", Value: 1},
			{Key: "courseId", Value: bson.D{{Key: "$toString", Value: "$courseDetails._id"}}},
			{Key: "courseName", Value: "$courseDetails.courseName"},
			{Key: "program", Value: "$courseDetails.program"},
			{Key: "courseType", Value: "$courseDetails.courseType"},
		}}},
		bson.D{{Key: "$facet", Value: bson.D{
			{Key: "data", Value: bson.A{
				bson.D{{Key: "$sort", Value: bson.D{
					{Key: "numberOfCourses", Value: -1},
					{Key: "_id", Value: 1},
					{Key: "courseId", Value: 1},
				}}},
				bson.D{{Key: "$skip", Value: offset}},
				bson.D{{Key: "$limit", Value: limit}},
			}},
			{Key: "total", Value: bson.A{
				bson.D{{Key: "$count", Value: "count"}},
			}},
		}}},
	)

	return pipeline
}

func collegeMatch(f models.CollegeFilter) bson.D {
	var match bson.D
	if f.Country != "" {
		match = append(match, bson.E{Key: "country", Value: f.Country})
	}
	if f.CollegeName != "" {
		match = append(match, bson.E{Key: "name", Value: containsInsensitive(f.CollegeName)})
	}
	return match
}

func courseMatch(f models.CollegeFilter) bson.D {
	var match bson.D
	if f.Program != "" {
		match = append(match, bson.E{Key: "courseDetails.program", Value: f.Program})
	}
	if f.Type != "" {
		match = append(match, bson.E{Key: "courseDetails.courseType", Value: f.Type})
	}
	if f.CourseName != "" {
		match = append(match, bson.E{Key: "courseDetails.courseName", Value: containsInsensitive(f.CourseName)})
	}
	return match
}

// containsInsensitive matches s literally anywhere in the field, ignoring case
func containsInsensitive(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}
