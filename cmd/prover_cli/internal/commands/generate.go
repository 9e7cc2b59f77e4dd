package commands

//go:generate go run github.com/matryer/moq -out prover_status_api_generated_mock_test.go -rm -stub -with-resets -pkg commands ../../../../services/proverstatus/public ProverStatusApi
//go:generate go run github.com/matryer/moq -out batch_l1_api_generated_mock_test.go -rm -stub -with-resets -pkg commands ../../../../services/proverstatus/public BatchL1Api
//go:generate go run github.com/matryer/moq -out prover_admin_api_generated_mock_test.go -rm -stub -with-resets -pkg commands ../../../../services/proverstatus/public ProverAdminApi
