package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/joeydtaylor/meditation/pkg/builder"
	kafka "github.com/segmentio/kafka-go"
)

const script = `
Welcome to this ten-minute meditation journey.
Find a comfortable position, and gently close your eyes.
[Pause]
Take a deep breath in... and slowly exhale...
Allow each breath to help you settle more deeply into relaxation.
[Pause]
Feel the peaceful sounds surrounding you in space.
The crystal bowls and sacred chants will guide you into a deeper state of consciousness.
[Long Pause]
Notice any tension in your body... and with each exhale, let it dissolve away.
[Pause]
The sounds are creating a cocoon of peaceful energy around you.
Simply observe their gentle movement...
[Long Pause]
If thoughts arise, let them pass by like clouds in the sky.
There's nothing you need to do... nowhere you need to go...
[Very Long Pause]
Allow the healing vibrations to wash over you...
Bringing peace to every cell of your being...
[Long Pause]
In these next few moments, simply rest in awareness...
[Very Long Pause]
As we begin to conclude this meditation...
Gradually become aware of your breath once again...
[Pause]
Feel the points where your body makes contact with the surface beneath you...
[Pause]
When you're ready, slowly wiggle your fingers and toes...
Take a deep breath in...
And gently open your eyes...
Carrying this sense of peace with you into the rest of your day.
`

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	logger := builder.NewLogger(builder.LoggerWithLevel(builder.EnvOr("MEDITATION_LOG_LEVEL", "info")))
	defer logger.Flush()
	if path := builder.EnvOr("MEDITATION_LOG_FILE", ""); path != "" {
		if err := builder.AddFileSink(logger, path, builder.EnvOr("MEDITATION_LOG_FILE_LEVEL", "")); err != nil {
			fmt.Fprintf(os.Stderr, "log file: %v\n", err)
			os.Exit(1)
		}
	}

	if err := run(ctx, logger); err != nil {
		logger.Error("guided session failed", "error", err)
		fmt.Fprintf(os.Stderr, "guided session failed: %v\n", err)
		_ = logger.Flush()
		os.Exit(1)
	}
}

func run(ctx context.Context, logger builder.Logger) error {
	synthOpts := []builder.SynthesizerOption{builder.SynthesizerWithLogger(logger)}
	if seed, ok := builder.EnvUint64("MEDITATION_SEED"); ok {
		synthOpts = append(synthOpts, builder.SynthesizerWithSeed(seed))
	}
	synth := builder.NewSynthesizer(synthOpts...)
	renderer := builder.NewRenderer(builder.RendererWithLogger(logger))

	engine, err := speechEngine(ctx, logger)
	if err != nil {
		return err
	}
	voice := builder.NewVoiceSynthesizer(engine, renderer,
		builder.VoiceWithLogger(logger),
		builder.VoiceWithPauseMarkers(builder.EnvOr("MEDITATION_STRIP_PAUSES", "") == "1"),
	)

	pub, closePub, err := publisher(ctx, logger)
	if err != nil {
		return err
	}
	defer closePub()

	composer := builder.NewComposer(synth, renderer,
		builder.ComposerWithLogger(logger),
		builder.ComposerWithVoice(voice),
		builder.ComposerWithWriter(builder.NewSessionWriter(
			builder.SessionWriterWithLogger(logger),
			builder.SessionWriterWithDirectory(builder.EnvOr("MEDITATION_OUTPUT_DIR", "output")),
		)),
		builder.ComposerWithPublisher(pub),
		builder.ComposerWithSensor(builder.NewSensor(
			builder.SensorWithOnStageCompleteFunc(func(_ builder.ComponentMetadata, stage string, elapsed time.Duration) {
				fmt.Printf("  %-10s %s\n", stage, elapsed.Round(time.Millisecond))
			}),
		)),
	)

	session, err := composer.Generate(ctx, builder.SessionRequest{
		Duration: float64(builder.EnvIntOr("MEDITATION_DURATION_SECONDS", 600)),
		Band:     "theta",
		Sounds:   []string{builder.CrystalBowls, builder.OmChant, builder.WindChimes},
		Script:   script,
	}, "meditation_10min.wav")
	if err != nil {
		return err
	}

	fmt.Printf("10-minute meditation session saved to: %s\n", session.Path)
	return nil
}

func speechEngine(ctx context.Context, logger builder.Logger) (builder.SpeechEngine, error) {
	switch strings.ToLower(builder.EnvOr("MEDITATION_TTS", "gtts")) {
	case "gtts", "google":
		return builder.NewGoogleSpeechEngine(builder.GoogleSpeechWithLogger(logger)), nil
	case "polly":
		cfg, err := builder.NewAWSConfig(ctx, builder.EnvOr("AWS_REGION", ""))
		if err != nil {
			return nil, fmt.Errorf("aws config: %w", err)
		}
		opts := []builder.PollySpeechOption{builder.PollySpeechWithLogger(logger)}
		if v := builder.EnvOr("MEDITATION_POLLY_VOICE", ""); v != "" {
			opts = append(opts, builder.PollySpeechWithVoice(v))
		}
		client := builder.NewPollyClient(cfg, builder.EnvOr("AWS_ENDPOINT_URL", ""))
		return builder.NewPollySpeechEngine(client, opts...), nil
	default:
		return nil, fmt.Errorf("unknown MEDITATION_TTS engine %q", builder.EnvOr("MEDITATION_TTS", ""))
	}
}

// publisher returns a no-op publisher unless S3 or Kafka is configured. The returned func
// closes the Kafka writer.
func publisher(ctx context.Context, logger builder.Logger) (builder.Publisher, func(), error) {
	opts := []builder.PublisherOption{builder.PublisherWithLogger(logger)}
	closeFn := func() {}

	if bucket := builder.EnvOr("MEDITATION_S3_BUCKET", ""); bucket != "" {
		cfg, err := builder.NewAWSConfig(ctx, builder.EnvOr("AWS_REGION", ""))
		if err != nil {
			return nil, nil, fmt.Errorf("aws config: %w", err)
		}
		endpoint := builder.EnvOr("AWS_ENDPOINT_URL", "")
		client := builder.NewS3Client(cfg, endpoint, endpoint != "")
		opts = append(opts, builder.PublisherWithS3(client, bucket, builder.EnvOr("MEDITATION_S3_PREFIX", "")))
	}

	if brokers := builder.EnvListOr("MEDITATION_KAFKA_BROKERS", nil); len(brokers) > 0 {
		transport, err := kafkaTransport()
		if err != nil {
			return nil, nil, err
		}
		w := builder.NewKafkaGoWriter(brokers, builder.EnvOr("MEDITATION_KAFKA_TOPIC", "meditation.sessions"),
			builder.KafkaGoWriterWithTransport(transport),
			builder.KafkaGoWriterWithRequiredAcks(builder.EnvOr("MEDITATION_KAFKA_ACKS", "all")),
			builder.KafkaGoWriterWithBatchTimeout(time.Duration(builder.EnvIntOr("MEDITATION_KAFKA_BATCH_TIMEOUT_MS", 10))*time.Millisecond),
		)
		closeFn = func() {
			if err := w.Close(); err != nil {
				logger.Warn("kafka writer close failed", "error", err)
			}
		}
		opts = append(opts, builder.PublisherWithKafka(w))
	}

	return builder.NewPublisher(opts...), closeFn, nil
}

// kafkaTransport returns nil when neither SASL nor a CA bundle is configured.
func kafkaTransport() (*kafka.Transport, error) {
	user := builder.EnvOr("MEDITATION_KAFKA_SASL_USER", "")
	ca := builder.EnvListOr("MEDITATION_KAFKA_CA", nil)
	if user == "" && len(ca) == 0 {
		return nil, nil
	}

	var tlsCfg *tls.Config
	if len(ca) > 0 {
		var err error
		tlsCfg, err = builder.TLSFromCAFilesStrict(ca, builder.EnvOr("MEDITATION_KAFKA_SERVER_NAME", ""))
		if err != nil {
			return nil, err
		}
	}

	transport := builder.NewKafkaGoTransport(tlsCfg, nil, "meditation")
	if user != "" {
		mech, err := builder.SASLSCRAM(user, builder.EnvOr("MEDITATION_KAFKA_SASL_PASS", ""), builder.EnvOr("MEDITATION_KAFKA_SASL_MECH", ""))
		if err != nil {
			return nil, err
		}
		transport.SASL = mech
	}
	return transport, nil
}
