package templates_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/memelaunch/launcher/internal/launcher"
	"github.com/memelaunch/launcher/internal/templates"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, nil))

func TestLoaderLoad(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		// when
		jobs, err := templates.NewLoader(logger).Load("./testdata/templates.json")

		// then
		require.NoError(t, err)
		require.Len(t, jobs, 2)

		first := jobs[0]
		require.NoError(t, first.ConfigErr)
		require.Equal(t, 0, first.Index)
		require.Equal(t, "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23", first.Account.Address)
		require.Equal(t, "TT", first.Request.Symbol)
		require.Equal(t, "a token for tests", first.Request.Description)
		require.Equal(t, "./images/tt.png", first.Request.ImageRef)
		require.Equal(t, "0.5", first.Request.PresaleBNB)
		require.Equal(t, 2*time.Minute, first.Request.LaunchDelay)
		require.True(t, first.Request.Approve.Disabled)
		require.Equal(t, "https://x.com/tt", first.Request.TwitterURL)

		second := jobs[1]
		require.ErrorIs(t, second.ConfigErr, launcher.ErrConfigInvalid)
		var fieldErr *templates.FieldError
		require.ErrorAs(t, second.ConfigErr, &fieldErr)
		require.Equal(t, 1, fieldErr.Index)
		require.Equal(t, "symbol", fieldErr.Field)
		require.Equal(t, "templates[1].symbol: missing", fieldErr.Error())
	})

	t.Run("yaml", func(t *testing.T) {
		// when
		jobs, err := templates.NewLoader(logger).Load("./testdata/templates.yaml")

		// then
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		require.NoError(t, jobs[0].ConfigErr)
		require.Equal(t, "0.1", jobs[0].Request.PresaleBNB)
		require.Equal(t, time.Minute, jobs[0].Request.LaunchDelay)
		require.False(t, jobs[0].Request.Approve.Disabled)
		require.Equal(t, common.HexToAddress("0x9999999999999999999999999999999999999999"), jobs[0].Request.Approve.Spender)
		require.Equal(t, "500000000", jobs[0].Request.Approve.AmountTokens)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := templates.NewLoader(logger).Load("./testdata/none.json")

		require.ErrorIs(t, err, templates.ErrFailedToReadTemplates)
	})
}

func TestParse(t *testing.T) {
	tt := []struct {
		name                 string
		doc                  string
		expectedJobs         int
		expectedError        error
		expectedFields       map[int][]string
		expectedRPCOverrides []int
	}{
		{
			name:          "object instead of list",
			doc:           `{"name":"x"}`,
			expectedError: templates.ErrNotAList,
		},
		{
			name:          "empty document",
			doc:           ``,
			expectedError: templates.ErrNotAList,
		},
		{
			name:          "malformed",
			doc:           `[{"name": }`,
			expectedError: templates.ErrFailedToParseTemplates,
		},
		{
			name:         "empty list",
			doc:          `[]`,
			expectedJobs: 0,
		},
		{
			name:         "every missing field is reported",
			doc:          `[{"name":"a"}, {"wallet":{"accountAddress":"0x01","privateKey":"k"},"name":"n","symbol":"s","desc":"d","imagePath":"i","label":"l","rpcUrl":"http://node"}]`,
			expectedJobs: 2,
			expectedFields: map[int][]string{
				0: {"wallet.accountAddress", "wallet.privateKey", "symbol", "desc", "imagePath", "label"},
			},
			expectedRPCOverrides: []int{1},
		},
		{
			name:         "invalid spender and delay",
			doc:          `[{"wallet":{"accountAddress":"0x01","privateKey":"k"},"name":"n","symbol":"s","desc":"d","imagePath":"i","label":"l","approveSpender":"bob","launchDelayMs":-1}]`,
			expectedJobs: 1,
			expectedFields: map[int][]string{
				0: {"launchDelayMs", "approveSpender"},
			},
		},
		{
			name:         "non numeric delay",
			doc:          `[{"wallet":{"accountAddress":"0x01","privateKey":"k"},"name":"n","symbol":"s","desc":"d","imagePath":"i","label":"l","launchDelayMs":"soon"}]`,
			expectedJobs: 1,
			expectedFields: map[int][]string{
				0: {"launchDelayMs"},
			},
		},
		{
			name:         "wrong type only fails that template",
			doc:          `[{"name":["a"]}, {"wallet":{"accountAddress":"0x01","privateKey":"k"},"name":"n","symbol":"s","desc":"d","imagePath":"i","label":"l"}]`,
			expectedJobs: 2,
			expectedFields: map[int][]string{
				0: nil,
			},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// when
			jobs, rpcOverrides, err := templates.Parse([]byte(tc.doc))

			// then
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			require.Len(t, jobs, tc.expectedJobs)
			require.Equal(t, tc.expectedRPCOverrides, rpcOverrides)

			for i, job := range jobs {
				fields, failing := tc.expectedFields[i]
				if !failing {
					require.NoError(t, job.ConfigErr)
					continue
				}

				require.ErrorIs(t, job.ConfigErr, launcher.ErrConfigInvalid)
				require.Equal(t, fields, fieldNames(job.ConfigErr))
			}
		})
	}
}

func fieldNames(err error) []string {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return nil
	}

	var fields []string
	for _, e := range joined.Unwrap() {
		var fieldErr *templates.FieldError
		if errors.As(e, &fieldErr) {
			fields = append(fields, fieldErr.Field)
		}
	}

	return fields
}

func TestLaunchDelay(t *testing.T) {
	tt := []struct {
		name     string
		value    string
		expected time.Duration
	}{
		{name: "absent", value: "", expected: time.Minute},
		{name: "null", value: `,"launchDelayMs":null`, expected: time.Minute},
		{name: "number", value: `,"launchDelayMs":30000`, expected: 30 * time.Second},
		{name: "quoted number", value: `,"launchDelayMs":"60000"`, expected: time.Minute},
		{name: "quoted exponent", value: `,"launchDelayMs":"1.5e3"`, expected: 1500 * time.Millisecond},
		{name: "zero", value: `,"launchDelayMs":0`, expected: 0},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			doc := `[{"wallet":{"accountAddress":"0x01","privateKey":"k"},"name":"n","symbol":"s","desc":"d","imagePath":"i","label":"l"` + tc.value + `}]`

			// when
			jobs, _, err := templates.Parse([]byte(doc))

			// then
			require.NoError(t, err)
			require.Len(t, jobs, 1)
			require.NoError(t, jobs[0].ConfigErr)
			require.Equal(t, tc.expected, jobs[0].Request.LaunchDelay)
		})
	}
}
