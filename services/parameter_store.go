package services

import (
	stdctx "context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	log "github.com/sirupsen/logrus"
)

const (
	SecretSourceSSM = "ssm"
	SecretSourceEnv = "env"

	defaultDatabaseURLParameter = "/dev/api/db-url"
	defaultAWSRegion            = "eu-west-2"
)

var ErrSecretNotFound = errors.New("secret not found")

// SecretSource looks up one named secret value.
type SecretSource interface {
	GetSecret(ctx stdctx.Context, name string) (string, error)
}

// ssmAPI is the subset of the SSM client used here.
type ssmAPI interface {
	GetParameter(ctx stdctx.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

type ssmSecretSource struct {
	client ssmAPI
}

func NewSSMSecretSource(client ssmAPI) SecretSource {
	return &ssmSecretSource{client: client}
}

func (s *ssmSecretSource) GetSecret(ctx stdctx.Context, name string) (string, error) {
	out, err := s.client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		var notFound *types.ParameterNotFound
		if errors.As(err, &notFound) {
			return "", fmt.Errorf("%w: %s", ErrSecretNotFound, name)
		}
		return "", fmt.Errorf("failed to read parameter %s: %w", name, err)
	}
	if out.Parameter == nil || aws.ToString(out.Parameter.Value) == "" {
		return "", fmt.Errorf("%w: %s", ErrSecretNotFound, name)
	}
	return aws.ToString(out.Parameter.Value), nil
}

// envSecretSource reads the secret from an environment variable. For local
// runs without AWS credentials.
type envSecretSource struct {
	variable string
}

func NewEnvSecretSource(variable string) SecretSource {
	return &envSecretSource{variable: variable}
}

func (s *envSecretSource) GetSecret(_ stdctx.Context, _ string) (string, error) {
	value := os.Getenv(s.variable)
	if value == "" {
		return "", fmt.Errorf("%w: %s is not set", ErrSecretNotFound, s.variable)
	}
	return value, nil
}

type ParameterStoreService struct {
	context.DefaultService

	source        SecretSource
	parameterName string
	databaseURL   string
}

const PARAMETER_STORE_SVC = "parameter_store_svc"

func (svc ParameterStoreService) Id() string {
	return PARAMETER_STORE_SVC
}

// NewParameterStoreService builds the service with an explicit source instead
// of reading SECRET_SOURCE.
func NewParameterStoreService(source SecretSource, parameterName string) *ParameterStoreService {
	return &ParameterStoreService{source: source, parameterName: parameterName}
}

// Configure resolves the database URL. A missing secret stops startup here,
// before the database or HTTP services are touched.
func (svc *ParameterStoreService) Configure(ctx *context.Context) error {
	if svc.parameterName == "" {
		svc.parameterName = os.Getenv("DB_URL_PARAMETER")
		if svc.parameterName == "" {
			svc.parameterName = defaultDatabaseURLParameter
		}
	}

	if svc.source == nil {
		source, err := secretSourceFromEnv()
		if err != nil {
			return err
		}
		svc.source = source
	}

	if err := svc.Resolve(stdctx.Background()); err != nil {
		return err
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *ParameterStoreService) Start() error {
	return nil
}

func (svc *ParameterStoreService) Shutdown() {}

func (svc *ParameterStoreService) Resolve(ctx stdctx.Context) error {
	ctx, cancel := stdctx.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	value, err := svc.source.GetSecret(ctx, svc.parameterName)
	if err != nil {
		return fmt.Errorf("database url unavailable: %w", err)
	}
	svc.databaseURL = value

	log.WithField("parameter", svc.parameterName).Info("Database url resolved")
	return nil
}

func (svc *ParameterStoreService) DatabaseURL() string {
	return svc.databaseURL
}

func secretSourceFromEnv() (SecretSource, error) {
	switch strings.ToLower(os.Getenv("SECRET_SOURCE")) {
	case SecretSourceEnv:
		return NewEnvSecretSource("DATABASE_URL"), nil
	case "", SecretSourceSSM:
		region := os.Getenv("AWS_REGION")
		if region == "" {
			region = defaultAWSRegion
		}

		cfg, err := config.LoadDefaultConfig(stdctx.Background(), config.WithRegion(region))
		if err != nil {
			return nil, fmt.Errorf("unable to load AWS config: %w", err)
		}
		return NewSSMSecretSource(ssm.NewFromConfig(cfg)), nil
	default:
		return nil, fmt.Errorf("unsupported SECRET_SOURCE %q", os.Getenv("SECRET_SOURCE"))
	}
}
