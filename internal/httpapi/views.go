package httpapi

import "github.com/codeninja55/rudicom/internal/catalog"

func studyView(s *catalog.Study) map[string]any {
	tags := make(map[string]any, len(s.Tags))
	for k, v := range s.Tags {
		tags[k] = v.Interface()
	}
	return map[string]any{
		"id":         encodeIDString(s.ID),
		"uid":        s.UID,
		"patient_id": s.PatientID,
		"study_date": s.StudyDate,
		"study_time": s.StudyTime,
		"tags":       tags,
	}
}

func seriesView(s *catalog.Series) map[string]any {
	tags := make(map[string]any, len(s.Tags))
	for k, v := range s.Tags {
		tags[k] = v.Interface()
	}
	return map[string]any{
		"id":                 encodeIDString(s.ID),
		"uid":                s.UID,
		"study_id":           encodeIDString(s.StudyID),
		"series_number":      s.SeriesNumber,
		"series_description": s.SeriesDescription,
		"tags":               tags,
	}
}

func instanceView(inst *catalog.Instance) map[string]any {
	tags := make(map[string]any, len(inst.Tags))
	for k, v := range inst.Tags {
		tags[k] = v.Interface()
	}
	return map[string]any{
		"id":              encodeIDString(inst.ID),
		"uid":             inst.UID,
		"series_id":       encodeIDString(inst.SeriesID),
		"instance_number": inst.InstanceNumber,
		"tags":            tags,
		"size":            inst.Size,
		"owned":           inst.File.Owned,
		"md5":             inst.File.MD5,
	}
}
