package model

// SubjectPerformance summarizes exam attempts of one subject.
// AverageScore and PassRate are percentages in [0, 100].
type SubjectPerformance struct {
	SubjectID    int64   `json:"subjectId"`
	SubjectName  string  `json:"subjectName"`
	Attempts     int     `json:"attempts"`
	AverageScore float64 `json:"averageScore"`
	PassRate     float64 `json:"passRate"`
}

// TopicPerformance summarizes quiz attempts of one topic.
type TopicPerformance struct {
	TopicID      int64   `json:"topicId"`
	TopicName    string  `json:"topicName"`
	SubjectName  string  `json:"subjectName"`
	Attempts     int     `json:"attempts"`
	AverageScore float64 `json:"averageScore"`
	PassRate     float64 `json:"passRate"`
}
