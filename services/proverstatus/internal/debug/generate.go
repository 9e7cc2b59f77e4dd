package debug

//go:generate go run github.com/matryer/moq -out batch_job_source_generated_mock_test.go -rm -stub -with-resets . BatchJobSource
//go:generate go run github.com/matryer/moq -out stuck_job_source_generated_mock_test.go -rm -stub -with-resets . StuckJobSource
